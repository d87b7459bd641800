package contract

import "github.com/ricardofreitas/staffing/internal/app"

type SaveAllocationRequest = app.SaveAllocationRequest

type SaveAllocationResponse = app.SaveAllocationResponse

type PartialSaveError = app.PartialSaveError

type SyncResult = app.SyncResult
