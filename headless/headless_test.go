package headless

import (
	"strings"
	"testing"
	"time"

	"github.com/automoto/tilebound/kinematics"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hall is 6 tiles wide inside; the right wall's inner face is at x=216 and
// the floor top at y=72.
const hall = `DDDDDDDD
DP     D
D      D
DDDDDDDD`

// tower is one tile wide with room to jump well clear of the ceiling.
const tower = `DDDD
D  D
D  D
D  D
D  D
D  D
D  D
D  D
D  D
DP D
D  D
DDDD`

func testOptions() Options {
	return Options{
		Params: kinematics.Params{
			Gravity:          40,
			JumpSpeed:        -600,
			MovementSpeed:    240,
			Friction:         30,
			MaxFallSpeed:     900,
			ContactTolerance: 1,
		},
		Width:    20,
		Height:   30,
		TickRate: 60,
		Quiet:    true,
	}
}

func newRunner(t *testing.T, script string) *Runner {
	t.Helper()
	return newRunnerOn(t, hall, script)
}

func newRunnerOn(t *testing.T, grid, script string) *Runner {
	t.Helper()
	data, err := leveldata.ParseGrid(strings.Split(grid, "\n"), leveldata.DefaultGridOptions(36))
	require.NoError(t, err)
	s, err := ParseScript(script)
	require.NoError(t, err)
	r, err := NewRunner(data, s, testOptions())
	require.NoError(t, err)
	return r
}

func TestParseScript(t *testing.T) {
	s, err := ParseScript("right:30, right+jump:1,none , left:2")
	require.NoError(t, err)
	assert.Equal(t, Script{
		{Intent: kinematics.Intent{MoveRight: true}, Steps: 30},
		{Intent: kinematics.Intent{MoveRight: true, Jump: true}, Steps: 1},
		{Steps: 1},
		{Intent: kinematics.Intent{MoveLeft: true}, Steps: 2},
	}, s)
	assert.Equal(t, 34, s.Len())
}

func TestParseScriptErrors(t *testing.T) {
	for _, in := range []string{"", " , ", "right:0", "right:-2", "right:x", "dash:3", "right+fly:1"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseScript(in)
			assert.ErrorIs(t, err, ErrInvalidScript)
		})
	}
}

func TestScriptAtFiresJumpOnce(t *testing.T) {
	s, err := ParseScript("none:1,jump:3")
	require.NoError(t, err)

	in, ok := s.At(1)
	require.True(t, ok)
	assert.True(t, in.Jump)

	in, ok = s.At(2)
	require.True(t, ok)
	assert.False(t, in.Jump)

	_, ok = s.At(4)
	assert.False(t, ok)
	_, ok = s.At(-1)
	assert.False(t, ok)
}

func TestRunnerLandsAndWalksIntoWall(t *testing.T) {
	r := newRunner(t, "none:30,right:90")

	frames, err := r.RunSteps(30)
	require.NoError(t, err)
	require.Len(t, frames, 30)
	assert.Equal(t, kinematics.Grounded, frames[29].State)
	assert.Equal(t, 42.0, frames[29].Position.Y)

	frames, err = r.RunSteps(1000)
	require.NoError(t, err)
	assert.Len(t, frames, 90, "stops at the end of the script")
	assert.True(t, r.Done())

	last := frames[len(frames)-1]
	assert.Equal(t, 196.0, last.Position.X)
	assert.True(t, last.Contacts.Right)
	assert.Equal(t, kinematics.Grounded, last.State)
	assert.Len(t, r.Frames(), 120)
}

func TestRunnerDoubleJump(t *testing.T) {
	r := newRunnerOn(t, tower, "none:30,jump:1,none:5,jump:1,none:5,jump:1")
	frames, err := r.RunSteps(30)
	require.NoError(t, err)
	require.Equal(t, kinematics.Grounded, frames[29].State)
	assert.Equal(t, 330.0, frames[29].Position.Y)

	frames, err = r.RunSteps(100)
	require.NoError(t, err)
	require.Len(t, frames, 13)

	// Jump speed is set before gravity is applied within the same step.
	assert.Equal(t, -560.0, frames[0].Velocity.Y)
	assert.Equal(t, kinematics.Airborne, frames[0].State)
	assert.Equal(t, -360.0, frames[5].Velocity.Y)
	assert.Equal(t, -560.0, frames[6].Velocity.Y, "air jump resets vertical speed")
	assert.Equal(t, frames[11].Velocity.Y+40, frames[12].Velocity.Y, "third press is ignored")
	assert.False(t, frames[12].Contacts.Top)
	assert.False(t, r.Body().DoubleJumpAvailable)
}

func TestNewRunnerRejectsBadTickRate(t *testing.T) {
	data, err := leveldata.ParseGrid([]string{"P", "D"}, leveldata.DefaultGridOptions(36))
	require.NoError(t, err)
	opts := testOptions()
	opts.TickRate = 0
	_, err = NewRunner(data, Script{{Steps: 1}}, opts)
	assert.ErrorIs(t, err, ErrInvalidTickRate)
}

func TestGameLoopFinishesScript(t *testing.T) {
	r := newRunner(t, "none:10")
	loop := NewGameLoop(r, 1000)

	done := make(chan error, 1)
	go func() { done <- loop.Run() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not finish")
	}
	assert.Len(t, r.Frames(), 10)
	loop.Stop()
}

func TestGameLoopStop(t *testing.T) {
	r := newRunner(t, "none:1000000")
	loop := NewGameLoop(r, 100)

	done := make(chan error, 1)
	go func() { done <- loop.Run() }()
	loop.Stop()
	loop.Stop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}
