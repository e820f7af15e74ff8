package services

// Level is the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level
	Message string
}

// Notifier shows toast-style notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// Route is a screen of the client.
type Route string

const (
	RouteHome     Route = "/"
	RouteLogin    Route = "/login"
	RouteRegister Route = "/register"
	RouteProfile  Route = "/profile"
)

// Navigator performs client-side screen transitions.
type Navigator interface {
	Navigate(to Route)
}
