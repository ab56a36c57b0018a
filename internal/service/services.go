package service

import (
	"github.com/MKhiriev/sterling-client/internal/adapter"
	"github.com/MKhiriev/sterling-client/internal/logger"
	"github.com/MKhiriev/sterling-client/internal/retrier"
)

// ClientServices groups the services of one client process.
type ClientServices struct {
	AuthService  AuthService
	Data         DataSynchronizer
	RulesService RulesService
	AdminService AdminService
	ReconcileJob ReconcileJob
}

// NewClientServices wires the services around one adapter, snapshot cache
// and session. reads is the retry policy of every fetch.
func NewClientServices(serverAdapter adapter.ServerAdapter, cache SnapshotCache, session Session, reads retrier.Policy, log *logger.Logger) *ClientServices {
	authSvc := NewAuthService(serverAdapter, session, log.Component("auth"))
	data := NewDataSynchronizer(serverAdapter, cache, session, reads, log.Component("synchronizer"))

	return &ClientServices{
		AuthService:  authSvc,
		Data:         data,
		RulesService: NewRulesService(serverAdapter, reads, log.Component("rules")),
		AdminService: NewAdminService(serverAdapter, authSvc, data, reads, log.Component("admin")),
		ReconcileJob: NewReconcileJob(data, log.Component("reconcile")),
	}
}
