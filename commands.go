package lumen

// Commands is handed to module installers and to systems that ask for it.
type Commands struct {
	app *App
}

func (cmd *Commands) ChangeState(newState State) *Commands {
	cmd.app.changeState(newState)
	return cmd
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) UseSystem(system any) *Commands {
	if sched, ok := system.(systemScheduleBuilder); ok {
		cmd.app.UseSystem(sched)
	} else {
		cmd.app.UseSystem(System(system))
	}
	return cmd
}

// Quit stops the app after the current frame.
func (cmd *Commands) Quit() {
	cmd.app.requestQuit()
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}
