package handlers

import (
	"net/http"

	"masterboxer.com/project-forum/models"
)

// GetPostComments lists comments only while the parent post exists.
func GetPostComments(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := postID(r)
		if !ok {
			writeError(w, http.StatusNotFound, msgPostNotFound)
			return
		}

		if _, err := store.GetPost(r.Context(), id); err != nil {
			writePostLookupError(w, "GetPostComments", err)
			return
		}

		comments, err := store.ListComments(r.Context(), id)
		if err != nil {
			writeInternalError(w, "GetPostComments", err)
			return
		}

		writeSuccess(w, http.StatusOK, comments)
	}
}

func CreateComment(store Store) http.HandlerFunc {
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

		if _, err := store.GetPost(r.Context(), id); err != nil {
			writePostLookupError(w, "CreateComment", err)
			return
		}

		username := usernameOrDefault(req.Username)
		commentID, err := store.CreateComment(r.Context(), id, *req.Text, username)
		if err != nil {
			writeInternalError(w, "CreateComment", err)
			return
		}

		writeSuccess(w, http.StatusCreated, models.Comment{
			ID:       commentID,
			Parent:   id,
			Score:    0,
			Text:     *req.Text,
			Username: username,
		})
	}
}
