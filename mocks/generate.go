package mocks

//go:generate mockgen -destination=./mock_candle_source.go -package=mocks github.com/rxtech-lab/argo-advisor/pkg/marketdata/provider CandleSource
//go:generate mockgen -destination=./mock_snapshot_source.go -package=mocks github.com/rxtech-lab/argo-advisor/pkg/marketdata/provider SnapshotSource
