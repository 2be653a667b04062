package routes

const (
	RootPath   = "/"
	HealthPath = "/health"
	EdPath     = "/ed"
	JohnnyPath = "/johnny"
)

// Builtin returns the routes every instance serves, in registration order.
func Builtin() []Route {
	return []Route{
		MustRoute(RootPath, Payload{
			"message": "Hello, world!",
			"status":  "success",
		}),
		MustRoute(HealthPath, Payload{
			"status": "healthy",
		}),
		MustRoute(EdPath, Payload{
			"message":  "Hello, Ed!",
			"greeting": "How are you?",
		}),
		MustRoute(JohnnyPath, Payload{
			"message":  "Hello, John!",
			"greeting": "How are you?",
		}),
	}
}
