package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bookshelf/cache"
	"bookshelf/models"
	"bookshelf/store"
)

const DEFAULT_PAGE = 1
const DEFAULT_LIMIT = 10

// Service holds the handlers' dependencies. Everything is injected so
// tests run against isolated stores instead of shared package state.
type Service struct {
	Store  store.BookStore
	Cacher cache.RequestCacher
	Logger zerolog.Logger
}

func CreateService(bookStore store.BookStore, cacher cache.RequestCacher, logger zerolog.Logger) *Service {
	return &Service{Store: bookStore, Cacher: cacher, Logger: logger}
}

func (s *Service) ListBooks(c *gin.Context) {
	page := parsePositiveInt(c.Query("page"), DEFAULT_PAGE)
	limit := parsePositiveInt(c.Query("limit"), DEFAULT_LIMIT)

	books := s.Store.List()

	start := (page - 1) * limit
	if start >= len(books) {
		c.JSON(http.StatusOK, []models.Book{})
		return
	}

	end := start + limit
	if end > len(books) {
		end = len(books)
	}

	c.JSON(http.StatusOK, books[start:end])
}

func (s *Service) SearchBooks(c *gin.Context) {
	title := c.Query("title")
	author := c.Query("author")

	if title == "" && author == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "at least one of 'title' or 'author' is required for search"})
		return
	}

	matches := make([]models.Book, 0)
	for _, book := range s.Store.List() {
		if title != "" && !containsFold(book.Title, title) {
			continue
		}
		if author != "" && !containsFold(book.Author, author) {
			continue
		}
		matches = append(matches, book)
	}

	if len(matches) == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "no books matched the search"})
		return
	}

	c.JSON(http.StatusOK, matches)
}

func (s *Service) GetBookById(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		s.bookNotFound(c)
		return
	}

	book, ok := s.Store.Get(id)
	if !ok {
		s.bookNotFound(c)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (s *Service) CreateBook(c *gin.Context) {
	var req models.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Id != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "id must not be provided on create"})
		return
	}

	for _, book := range s.Store.List() {
		if strings.EqualFold(book.Title, req.Title) && strings.EqualFold(book.Author, req.Author) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "book already exists"})
			return
		}
	}

	book := s.Store.Insert(req.Title, req.Author)

	c.JSON(http.StatusCreated, book)
}

func (s *Service) UpdateBookById(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		s.bookNotFound(c)
		return
	}

	var req models.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Id != nil && *req.Id != id {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "id in body must match the id in the path"})
		return
	}

	book, ok := s.Store.Update(id, req.Title, req.Author)
	if !ok {
		s.bookNotFound(c)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (s *Service) DeleteBookById(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		s.bookNotFound(c)
		return
	}

	if !s.Store.Delete(id) {
		s.bookNotFound(c)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Service) ResetBooks(c *gin.Context) {
	s.Store.Reset()
	c.Status(http.StatusNoContent)
}

// Activity returns the caller's recent requests against the books
// routes, newest first.
func (s *Service) Activity(c *gin.Context) {
	entries, err := s.Cacher.Read(c.Request.Context(), c.ClientIP())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	userRequests := make([]models.UserRequest, 0, len(entries))
	for _, entry := range entries {
		var userRequest models.UserRequest
		if err := json.Unmarshal([]byte(entry), &userRequest); err != nil {
			continue
		}
		userRequests = append(userRequests, userRequest)
	}

	c.JSON(http.StatusOK, userRequests)
}

// CacheUserRequest records the request in the caller's activity history.
// Best-effort: a cache failure never touches the response.
func (s *Service) CacheUserRequest(c *gin.Context) {
	userRequest := models.UserRequest{
		Method: c.Request.Method,
		Route:  c.Request.URL.Path,
	}

	entry, err := json.Marshal(userRequest)
	if err == nil {
		if err := s.Cacher.Write(c.Request.Context(), c.ClientIP(), entry); err != nil {
			s.Logger.Warn().Err(err).Msg("failed to cache user request")
		}
	}

	c.Next()
}

func (s *Service) bookNotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("book with id '%v' not found", c.Param("id"))})
}

// parsePositiveInt falls back to def for anything that is not a
// positive integer, so garbage pagination params degrade to defaults
// instead of inheriting coercion quirks.
func parsePositiveInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
