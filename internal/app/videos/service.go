package videos

import (
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/videos"
	"github.com/blakethaselberger/StarsOps-sub001/internal/filter"
)

// Store defines the contract for persisting and retrieving video metadata.
type Store interface {
	ListVideos() []videos.Video
	SetVideos([]videos.Video)
}

// Service coordinates video library operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Videos returns the whole library.
func (s *Service) Videos() []videos.Video {
	return s.store.ListVideos()
}

// Search returns videos matching f.
func (s *Service) Search(f filter.VideoFilters) []videos.Video {
	return filter.Videos(s.store.ListVideos(), f)
}

// ReplaceVideos swaps the stored library.
func (s *Service) ReplaceVideos(items []videos.Video) {
	s.store.SetVideos(items)
}
