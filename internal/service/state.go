package service

import "github.com/MKhiriev/sterling-client/models"

// State is the load state of a [DataSynchronizer].
type State = models.LoadState

const (
	StateUninitialized = models.LoadUninitialized
	StateLoading       = models.LoadLoading
	StateReady         = models.LoadReady
	StateEmpty         = models.LoadEmpty
)
