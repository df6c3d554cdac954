package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	developerHandler developerHandler
	projectHandler   projectHandler
}
