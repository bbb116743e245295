package app_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/app"
	"go.trai.ch/weave/internal/core/domain"
)

func TestRenderTree(t *testing.T) {
	g := domain.NewGraph()
	records := []*domain.PackageRecord{
		{Name: "App", Tier: domain.AssetTier, ExplicitDependencies: []string{"UI", "Core"}},
		{Name: "UI", ExplicitDependencies: []string{"Core", "Log"}},
		{Name: "Core", ExplicitDependencies: []string{"Log"}},
		{Name: "Log"},
		{Name: "Tools", ExplicitDependencies: []string{"Log"}},
	}
	for _, r := range records {
		require.NoError(t, g.AddPackage(r))
	}
	require.NoError(t, g.ComputeClosures())

	cfg := &domain.ProjectConfig{ProjectName: "Game"}
	schema := domain.NewProjectSchema(cfg, g, domain.NewProjectTarget(domain.PlatformWindows, ""))

	lines := app.RenderTree(schema)

	gold := goldie.New(t)
	gold.Assert(t, "dependency_tree", []byte(strings.Join(lines, "\n")+"\n"))
}
