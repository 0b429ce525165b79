package memory_test

import (
	"testing"

	"github.com/m-mizutani/usher/pkg/repository/memory"
	"github.com/m-mizutani/usher/pkg/repository/testhelper"
)

func TestMemoryIntakeRepository(t *testing.T) {
	testhelper.TestAll(t, memory.New())
}
