package service

import (
	"github.com/hmdissanayake/tank-watch/internal/adapter"
	"github.com/hmdissanayake/tank-watch/internal/crypto"
	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/internal/store"
	"github.com/hmdissanayake/tank-watch/internal/validators"
)

type ClientServices struct {
	VaultService        VaultService
	ProfileService      ProfileService
	GateService         GateService
	OrchestratorService OrchestratorService
	DataService         DataService
	InsightService      InsightService
	VerifyJob           VerifyJob
	ReconcileJob        ReconcileJob
}

func NewClientServices(
	storages *store.ClientStorages,
	auth adapter.AuthAdapter,
	remote adapter.RemoteStore,
	ai adapter.AIAdapter,
	frames FrameSource,
	log *logger.Logger,
) *ClientServices {
	vaultSvc := NewVaultService(storages.VaultRepository, log)
	profileSvc := NewProfileService(remote, log)
	gateSvc := NewGateService(ai, log)
	orchestratorSvc := NewOrchestratorService(vaultSvc, profileSvc, gateSvc, auth, crypto.NewCredentialFactory(), log)
	dataSvc := NewDataService(remote, storages, ai, validators.NewEntryValidator(), log)

	return &ClientServices{
		VaultService:        vaultSvc,
		ProfileService:      profileSvc,
		GateService:         gateSvc,
		OrchestratorService: orchestratorSvc,
		DataService:         dataSvc,
		InsightService:      NewInsightService(ai, storages.CacheRepository, log),
		VerifyJob:           NewVerifyJob(orchestratorSvc, frames, log),
		ReconcileJob:        NewReconcileJob(dataSvc, log),
	}
}
