package contract

import "github.com/ricardofreitas/staffing/internal/app"

type HeatmapRequest = app.HeatmapRequest

type HeatmapCell = app.HeatmapCell

type HeatmapRow = app.HeatmapRow

type HeatmapResponse = app.HeatmapResponse

type DrilldownRequest = app.DrilldownRequest

type DrilldownResponse = app.DrilldownResponse
