package mechanism_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestMechanism(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Mechanism Suite")
}
