package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/samber/lo"
	"masterboxer.com/project-forum/database"
	"masterboxer.com/project-forum/models"
)

func GetPosts(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := store.ListPosts(r.Context())
		if err != nil {
			writeInternalError(w, "GetPosts", err)
			return
		}

		writeSuccess(w, http.StatusOK, posts)
	}
}

func CreatePost(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeTextRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if !req.hasText() {
			writeError(w, http.StatusNotFound, msgEmptyText)
			return
		}

		username := usernameOrDefault(req.Username)
		id, err := store.CreatePost(r.Context(), *req.Text, username)
		if err != nil {
			writeInternalError(w, "CreatePost", err)
			return
		}

		writeSuccess(w, http.StatusCreated, models.Post{
			ID:       id,
			Score:    0,
			Text:     *req.Text,
			Username: username,
		})
	}
}

func GetPost(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := postID(r)
		if !ok {
			writeError(w, http.StatusNotFound, msgPostNotFound)
			return
		}

		post, err := store.GetPost(r.Context(), id)
		if err != nil {
			writePostLookupError(w, "GetPost", err)
			return
		}

		writeSuccess(w, http.StatusOK, post)
	}
}

// EditPost writes the new text first and then re-reads the post; a missing
// post is only detected by the read.
func EditPost(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeTextRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if !req.hasText() {
			writeError(w, http.StatusNotFound, msgEmptyText)
			return
		}

		id, ok := postID(r)
		if !ok {
			writeError(w, http.StatusNotFound, msgPostNotFound)
			return
		}

		if err := store.EditPost(r.Context(), id, *req.Text); err != nil {
			writeInternalError(w, "EditPost", err)
			return
		}

		updated, err := store.GetPost(r.Context(), id)
		if err != nil {
			writePostLookupError(w, "EditPost", err)
			return
		}

		writeSuccess(w, http.StatusOK, updated)
	}
}

// DeletePost responds with the post as it was before removal.
func DeletePost(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := postID(r)
		if !ok {
			writeError(w, http.StatusNotFound, msgPostNotFound)
			return
		}

		post, err := store.GetPost(r.Context(), id)
		if err != nil {
			writePostLookupError(w, "DeletePost", err)
			return
		}

		if err := store.DeletePost(r.Context(), id); err != nil {
			writeInternalError(w, "DeletePost", err)
			return
		}

		writeSuccess(w, http.StatusOK, post)
	}
}

func GetPostsByUsername(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := mux.Vars(r)["username"]

		posts, err := store.ListPostsByUsername(r.Context(), username)
		if err != nil {
			writeInternalError(w, "GetPostsByUsername", err)
			return
		}

		writeSuccess(w, http.StatusOK, posts)
	}
}

// postID parses the {id} path variable. Ids that do not fit in an int64
// cannot name a stored post.
func postID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func usernameOrDefault(username *string) string {
	name, _ := lo.Coalesce(lo.FromPtr(username), models.DefaultUsername)
	return name
}

func writePostLookupError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, database.ErrPostNotFound) {
		writeError(w, http.StatusNotFound, msgPostNotFound)
		return
	}
	writeInternalError(w, op, err)
}
