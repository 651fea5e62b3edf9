package storage

import "quorumdb/internal/metrics"

// Service layers operation metrics over the raw store.
type Service struct {
	store *Store
}

func NewStorageService() *Service {
	return &Service{store: NewStore()}
}

func (s *Service) Get(key string) (string, bool) {
	metrics.StorageOperationsTotal.WithLabelValues("get").Inc()
	return s.store.Get(key)
}

func (s *Service) Set(key, value string) {
	metrics.StorageOperationsTotal.WithLabelValues("set").Inc()
	s.store.Set(key, value)
	metrics.StorageKeysTotal.Set(float64(s.store.Len()))
}

func (s *Service) Dump() map[string]string {
	metrics.StorageOperationsTotal.WithLabelValues("dump").Inc()
	return s.store.Dump()
}

func (s *Service) Len() int {
	return s.store.Len()
}
