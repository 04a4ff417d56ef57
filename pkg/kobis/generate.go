package kobis

//go:generate mockgen -destination mocks/mock_kobis_client.go -package mocks github.com/jshim/cinesync/pkg/kobis IBoxOffice
