package routes

import (
	"github.com/gorilla/mux"
	"masterboxer.com/project-forum/handlers"
)

func CreateCommentRoutes(store handlers.Store, router *mux.Router) *mux.Router {
	router.HandleFunc("/post/{id:[0-9]+}/comments/", handlers.GetPostComments(store)).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}/comments/", handlers.MethodNotAllowed())
	router.HandleFunc("/post/{id:[0-9]+}/comment/", handlers.CreateComment(store)).Methods("POST")
	router.HandleFunc("/post/{id:[0-9]+}/comment/", handlers.MethodNotAllowed())

	return router
}
