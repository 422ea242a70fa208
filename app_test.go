package lumen

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

type callLog struct {
	calls []string
}

func (c *callLog) record(s string) { c.calls = append(c.calls, s) }

func TestApp_changeState(t *testing.T) {
	app := newApp()
	app.stateful = true
	app.initialState = 1
	app.state = 1
	app.finalState = 2

	app.changeState(2)
	if app.nextState != State(2) {
		t.Errorf("The nextState should be set correctly.")
	}
	if !app.stateTransitioning {
		t.Errorf("The stateTransitioning flag should be true.")
	}

	app.executeChangeState(2)
	if app.state != State(2) {
		t.Errorf("The app state should change correctly.")
	}
}

func TestApp_addResources(t *testing.T) {
	app := newApp()

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)
	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)
	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")

	require.Panics(t, func() { app.addResources(MockResource2{}) })

	got, ok := Resource[MockResource2](app)
	require.True(t, ok)
	assert.Same(t, resource2, got)
	_, ok = Resource[callLog](app)
	assert.False(t, ok)
}

func TestApp_SystemInjection(t *testing.T) {
	res := NewMockResource1("injected")
	var seen *MockResource1
	var commands *Commands

	app := NewAppBuilder().Build()
	app.addResources(res)
	app.UseSystem(System(func(r *MockResource1, cmd *Commands) {
		seen = r
		commands = cmd
	}))

	app.Step()
	assert.Same(t, res, seen)
	require.NotNil(t, commands)
	assert.Same(t, app, commands.app)
}

func TestApp_UnresolvedDependencyPanics(t *testing.T) {
	app := NewAppBuilder().Build()
	app.UseSystem(System(func(r *MockResource2) {}))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Contains(t, r, "Unable to resolve System dependency.")
		assert.Contains(t, r, "Dependency: *lumen.MockResource2")
	}()
	app.Step()
}

func TestApp_StagesRunInOrder(t *testing.T) {
	log := &callLog{}
	app := NewAppBuilder().Build()
	app.addResources(log)

	app.UseSystem(System(func(l *callLog) { l.record("render") }).InStage(Render))
	app.UseSystem(System(func(l *callLog) { l.record("prelude") }).InStage(Prelude))
	app.UseSystem(System(func(l *callLog) { l.record("update") }))
	app.UseSystem(System(func(l *callLog) { l.record("update2") }))

	custom := Stage{Name: "Lights", UpdateType: DynamicUpdate}
	app.UseStage(custom, AfterStage(Update))
	app.UseSystem(System(func(l *callLog) { l.record("lights") }).InStage(custom))

	app.Step()
	assert.Equal(t, []string{"prelude", "update", "update2", "lights", "render"}, log.calls)
	assert.Equal(t, []string{"Prelude", "PreUpdate", "Update", "Lights", "PostUpdate", "PreRender", "Render", "PostRender", "Finale"}, app.Stages())

	assert.Panics(t, func() { app.UseStage(custom, BeforeStage(Stage{Name: "Missing"})) })
	assert.Panics(t, func() { app.UseSystem(System(func() {}).InStage(Stage{Name: "Missing"})) })
}

func TestApp_QuitStopsRunFrames(t *testing.T) {
	app := NewAppBuilder().Build()
	frames := 0
	app.UseSystem(System(func(cmd *Commands) {
		frames++
		if frames == 3 {
			cmd.Quit()
		}
	}))

	assert.Equal(t, 3, app.RunFrames(10))
	assert.Equal(t, 3, frames)
	assert.Equal(t, uint64(3), app.Frame())
	assert.False(t, app.Step())
	assert.Equal(t, 0, app.RunFrames(5))
}

func TestApp_RunFramesLimit(t *testing.T) {
	app := NewAppBuilder().Build()
	assert.Equal(t, 4, app.RunFrames(4))
	assert.Equal(t, uint64(4), app.Frame())
}

func TestApp_StatefulRun(t *testing.T) {
	log := &callLog{}
	app := NewAppBuilder().UseStates(0, 2).Build()
	app.addResources(log)

	for s := State(0); s <= 2; s++ {
		app.UseSystem(System(func(l *callLog) { l.record(fmt.Sprintf("enter%d", s)) }).InState(OnEnter(s)))
		app.UseSystem(System(func(l *callLog) { l.record(fmt.Sprintf("exit%d", s)) }).InState(OnExit(s)))
	}
	app.UseSystem(System(func(l *callLog, cmd *Commands) {
		l.record("exec0")
		cmd.ChangeState(1)
	}).InState(OnExecute(0)))
	app.UseSystem(System(func(l *callLog, cmd *Commands) {
		l.record("exec1")
		cmd.ChangeState(2)
	}).InState(OnExecute(1)))

	app.Run()

	assert.Equal(t, []string{"enter0", "exec0", "exit0", "enter1", "exec1", "exit1", "enter2", "exit2"}, log.calls)
	assert.Equal(t, uint64(2), app.Frame())
}

func TestApp_StatefulSystemInStatelessAppPanics(t *testing.T) {
	app := NewAppBuilder().Build()
	assert.PanicsWithValue(t, "Trying to use a stateful system in a stateless app.", func() {
		app.UseSystem(System(func() {}).InState(OnEnter(1)))
	})
}
