package routes

import (
	"github.com/gorilla/mux"
	"masterboxer.com/project-forum/handlers"
)

func CreatePostRoutes(store handlers.Store, router *mux.Router) *mux.Router {
	router.HandleFunc("/posts/", handlers.GetPosts(store)).Methods("GET")
	router.HandleFunc("/posts/", handlers.CreatePost(store)).Methods("POST")
	router.HandleFunc("/posts/", handlers.MethodNotAllowed())
	router.HandleFunc("/posts/author/{username}/", handlers.GetPostsByUsername(store)).Methods("GET")
	router.HandleFunc("/posts/author/{username}/", handlers.MethodNotAllowed())
	router.HandleFunc("/post/{id:[0-9]+}/", handlers.GetPost(store)).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}/", handlers.EditPost(store)).Methods("POST")
	router.HandleFunc("/post/{id:[0-9]+}/", handlers.DeletePost(store)).Methods("DELETE")
	router.HandleFunc("/post/{id:[0-9]+}/", handlers.MethodNotAllowed())

	return router
}
