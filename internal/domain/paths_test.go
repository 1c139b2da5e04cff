package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dartlens/dartlens/internal/domain"
)

func TestRelativeTo_StripsRootPrefix(t *testing.T) {
	assert.Equal(t, "a/b.dart", domain.RelativeTo("/root/a/b.dart", "/root"))
	assert.Equal(t, "a/b.dart", domain.RelativeTo("/root/a/b.dart", "/root/"))
}

func TestRelativeTo_Idempotent(t *testing.T) {
	rel := domain.RelativeTo("/root/a/b.dart", "/root")
	assert.Equal(t, rel, domain.RelativeTo(rel, "/root"))
	assert.Equal(t, "lib/main.dart", domain.RelativeTo("lib/main.dart", "/root"))
}

func TestRelativeTo_UnrelatedPathUnchanged(t *testing.T) {
	assert.Equal(t, "/elsewhere/a.dart", domain.RelativeTo("/elsewhere/a.dart", "/root"))
	// Prefix test is on path segments, not raw characters.
	assert.Equal(t, "/rootish/a.dart", domain.RelativeTo("/rootish/a.dart", "/root"))
}

func TestRelativeTo_EdgeCases(t *testing.T) {
	assert.Equal(t, "", domain.RelativeTo("", "/root"))
	assert.Equal(t, "/root/a.dart", domain.RelativeTo("/root/a.dart", ""))
	assert.Equal(t, "", domain.RelativeTo("/root", "/root"))
}
