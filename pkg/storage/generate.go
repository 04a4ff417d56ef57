package storage

//go:generate mockgen -destination mocks/mock_storage.go -package mocks github.com/jshim/cinesync/pkg/storage Storage
