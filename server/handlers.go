package server

import (
	"net/http"
	"strconv"

	"vortex-source/model"
	"vortex-source/source"
)

func (s *Server) lookup(r *http.Request) source.ContentSource {
	return s.registry.Get(r.URL.Query().Get("runner"))
}

func pageParam(r *http.Request) int {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	return page
}

func (s *Server) handleRunners(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Names())
}

func (s *Server) handlePopular(w http.ResponseWriter, r *http.Request) {
	src := s.lookup(r)
	if src == nil {
		badRequest(w)
		return
	}
	result, err := src.GetDirectory(r.Context(), model.DirectoryRequest{Page: pageParam(r)})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	src := s.lookup(r)
	query := r.URL.Query().Get("search")
	if src == nil || query == "" {
		badRequest(w)
		return
	}
	result, err := src.GetDirectory(r.Context(), model.DirectoryRequest{
		Query: query,
		Page:  pageParam(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleChapters(w http.ResponseWriter, r *http.Request) {
	src := s.lookup(r)
	id := r.URL.Query().Get("id")
	if src == nil || id == "" {
		badRequest(w)
		return
	}
	chapters, err := src.GetChapters(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chapters)
}

func (s *Server) handlePages(w http.ResponseWriter, r *http.Request) {
	src := s.lookup(r)
	id := r.URL.Query().Get("id")
	chapterID := r.URL.Query().Get("chapterId")
	if src == nil || id == "" || chapterID == "" {
		badRequest(w)
		return
	}
	data, err := src.GetChapterData(r.Context(), id, chapterID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	src := s.lookup(r)
	id := r.URL.Query().Get("id")
	if src == nil || id == "" {
		badRequest(w)
		return
	}
	content, err := src.GetContent(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	resolver, ok := s.lookup(r).(source.PageLinkResolver)
	if !ok {
		badRequest(w)
		return
	}
	sections, err := resolver.GetSectionsForPage(r.Context(), model.PageLink{ID: "home"})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sections)
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	resolver, ok := s.lookup(r).(source.PageLinkResolver)
	sectionID := r.URL.Query().Get("id")
	if !ok || sectionID == "" {
		badRequest(w)
		return
	}
	resolved, err := resolver.ResolvePageSection(r.Context(), model.PageLink{ID: "home"}, sectionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resolved)
}
