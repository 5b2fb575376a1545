package services

import (
	"net/http"

	"github.com/dmitrijs2005/gophdrive/internal/client/client"
	"github.com/dmitrijs2005/gophdrive/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophdrive/internal/logging"
)

// RemoteStore is the whole remote surface the workflows talk to.
type RemoteStore struct {
	*AuthService
	*FileService
}

func NewRemoteStore(c client.Client, meta metadata.Repository, hc *http.Client, l logging.Logger) *RemoteStore {
	return &RemoteStore{
		AuthService: NewAuthService(c, meta, l),
		FileService: NewFileService(c, hc),
	}
}
