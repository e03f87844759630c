package domain

import "context"

// ServicePort defines the explorer service interface
type ServicePort interface {
	Choices(ctx context.Context) (ChoicesOutput, error)
	Charts(ctx context.Context, in ChartsInput) (ChartsOutput, error)
	Reload(ctx context.Context) (DatasetOutput, error)
	DatasetPort
}

// DatasetPort is the narrow view other modules use to report on the snapshot
type DatasetPort interface {
	Dataset(ctx context.Context) (DatasetOutput, error)
}
