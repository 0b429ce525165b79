package memory

import "github.com/m-mizutani/usher/pkg/domain/interfaces"

// New creates a new in-memory repository
func New() interfaces.IntakeRepository {
	return &intakeRepository{
		submissions: make(map[string]*submissionData),
	}
}
