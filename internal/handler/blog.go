package handler

import (
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/villafrance/frontend/internal/domain"
	"github.com/villafrance/frontend/internal/fallback"
	"github.com/villafrance/frontend/internal/logger"
)

const blogPageSize = 12

type BlogPageData struct {
	Posts fallback.Result[[]domain.BlogPost]
}

type BlogPostPageData struct {
	Post domain.BlogPost
	Body template.HTML
}

func (h *Handler) BlogGetHandler(w http.ResponseWriter, r *http.Request) {
	api, _ := h.bind(r)

	data := BlogPageData{
		Posts: fallback.Resolve("blog posts", func() ([]domain.BlogPost, error) {
			return api.BlogPosts(r.Context(), 0, blogPageSize)
		}, fallback.BlogPosts()),
	}
	if h.handleSessionExpiry(w, r, data.Posts.Err) {
		return
	}

	h.renderTemplate(w, r, "blog.html", data)
}

func (h *Handler) BlogPostGetHandler(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	api, _ := h.bind(r)

	post, err := api.BlogPost(r.Context(), slug)
	if err != nil {
		if h.handleSessionExpiry(w, r, err) {
			return
		}
		logger.Log.Warn("blog post fetch failed", "slug", slug, "error", err)
		http.NotFound(w, r)
		return
	}

	data := BlogPostPageData{
		Post: *post,
		Body: h.Markdown.Render(post.Content),
	}

	h.renderTemplate(w, r, "blog_post.html", data)
}
