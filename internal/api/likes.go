package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sudo-self/links/internal/metrics"
	"github.com/sudo-self/links/internal/store"
	"github.com/sudo-self/links/internal/visitor"
)

type likesAPIHandler struct {
	likes   store.LikeStoreIface
	visitor *visitor.Resolver
	topN    int
}

func newLikesAPIHandler(ls store.LikeStoreIface, v *visitor.Resolver, topN int) *likesAPIHandler {
	return &likesAPIHandler{likes: ls, visitor: v, topN: topN}
}

// Get returns like state for one page.
// @Summary      Get like state
// @Description  Returns the page's like count and whether this visitor has liked it. Unseen pages report zero likes.
// @Tags         Likes
// @Produce      json
// @Param        pageID  path      string  true  "Page ID"
// @Success      200     {object}  LikeResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /likes/{pageID} [get]
func (h *likesAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	if pageID == "" {
		writeError(w, http.StatusBadRequest, "missing page_id")
		return
	}

	vis := h.visitor.Resolve(w, r)
	stat, liked, err := h.likes.Get(r.Context(), pageID, vis)
	if err != nil {
		log.Printf("get likes for %q: %v", pageID, err)
		metrics.StoreErrorsTotal.WithLabelValues("get").Inc()
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, LikeResponse{Success: true, Page: pageBody(stat), HasLiked: liked})
}

// Add records a like for this visitor.
// @Summary      Like a page
// @Description  Adds a like for this visitor. Repeating the call does not double count.
// @Tags         Likes
// @Produce      json
// @Param        pageID  path      string  true  "Page ID"
// @Success      200     {object}  LikeResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /likes/{pageID} [post]
func (h *likesAPIHandler) Add(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	if pageID == "" {
		writeError(w, http.StatusBadRequest, "missing page_id")
		return
	}

	h.addLike(w, r, pageID, h.visitor.Resolve(w, r))
}

// addFromBodyRequest is the page-agnostic add body. Visitor is optional; when
// set it is used verbatim and no identity cookie is issued, for callers that
// manage their own tokens.
type addFromBodyRequest struct {
	PageID  string `json:"page_id"`
	Visitor string `json:"visitor"`
}

// AddFromBody records a like with the page id in the request body.
// @Summary      Like a page (body variant)
// @Description  Same as POST /likes/{pageID} with the page id, and optionally a visitor token, in the JSON body.
// @Tags         Likes
// @Accept       json
// @Produce      json
// @Param        body  body      addFromBodyRequest  true  "Page to like"
// @Success      200   {object}  LikeResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /likes [post]
func (h *likesAPIHandler) AddFromBody(w http.ResponseWriter, r *http.Request) {
	var req addFromBodyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PageID == "" {
		writeError(w, http.StatusBadRequest, "missing page_id")
		return
	}

	vis := req.Visitor
	if vis == "" {
		vis = h.visitor.Resolve(w, r)
	}
	h.addLike(w, r, req.PageID, vis)
}

func (h *likesAPIHandler) addLike(w http.ResponseWriter, r *http.Request, pageID, vis string) {
	stat, err := h.likes.Add(r.Context(), pageID, vis)
	if err != nil {
		log.Printf("add like for %q: %v", pageID, err)
		metrics.StoreErrorsTotal.WithLabelValues("add").Inc()
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.LikesAddedTotal.Inc()
	writeJSON(w, http.StatusOK, LikeResponse{Success: true, Page: pageBody(stat), HasLiked: true})
}

// Remove deletes this visitor's like.
// @Summary      Unlike a page
// @Description  Removes this visitor's like. Reports success=false if the visitor had not liked the page.
// @Tags         Likes
// @Produce      json
// @Param        pageID  path      string  true  "Page ID"
// @Success      200     {object}  LikeResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /likes/{pageID} [delete]
func (h *likesAPIHandler) Remove(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	if pageID == "" {
		writeError(w, http.StatusBadRequest, "missing page_id")
		return
	}

	vis := h.visitor.Resolve(w, r)
	stat, err := h.likes.Remove(r.Context(), pageID, vis)
	if err != nil {
		if errors.Is(err, store.ErrNotLiked) {
			// Domain rejection, not a server error: nothing was modified.
			metrics.LikesRejectedTotal.Inc()
			liked := false
			writeJSON(w, http.StatusOK, ErrorResponse{
				Success:  false,
				Error:    store.ErrNotLiked.Error(),
				HasLiked: &liked,
			})
			return
		}
		log.Printf("remove like for %q: %v", pageID, err)
		metrics.StoreErrorsTotal.WithLabelValues("remove").Inc()
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.LikesRemovedTotal.Inc()
	writeJSON(w, http.StatusOK, LikeResponse{Success: true, Page: pageBody(stat), HasLiked: false})
}

// Leaderboard lists the most liked pages.
// @Summary      Top pages
// @Description  Returns the top pages by like count, descending.
// @Tags         Likes
// @Produce      json
// @Success      200  {object}  LeaderboardResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /likes [get]
func (h *likesAPIHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.likes.Top(r.Context(), h.topN)
	if err != nil {
		log.Printf("top pages: %v", err)
		metrics.StoreErrorsTotal.WithLabelValues("top").Inc()
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	pages := make([]PageBody, 0, len(stats))
	for _, s := range stats {
		pages = append(pages, pageBody(s))
	}
	writeJSON(w, http.StatusOK, LeaderboardResponse{Success: true, Pages: pages})
}
