package catalog_test

import (
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/core/domain"
)

const netProject = `<?xml version="1.0" encoding="utf-8"?>
<Project ToolsVersion="14.0" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <PropertyGroup>
    <Configuration Condition=" '$(Configuration)' == '' ">Debug</Configuration>
  </PropertyGroup>
  <PropertyGroup>
    <AssemblyName>%s</AssemblyName>
  </PropertyGroup>
  <ItemGroup>
    <Compile Include="Client.cs" />
  </ItemGroup>
  <ItemGroup>
    <ProjectReference Include="..\..\Core\Core.csproj">
      <Name>Core</Name>
    </ProjectReference>
    <ProjectReference Include="..\..\Json\Json.csproj" />
  </ItemGroup>
</Project>`

func project(assembly string) *fstest.MapFile {
	return file(fmt.Sprintf(netProject, assembly))
}

func TestCatalog_LoadPrebuilt(t *testing.T) {
	t.Parallel()

	c := newCatalog(t, fstest.MapFS{
		"libs/Net/Source/Net.csproj": project("Net"),
	})

	meta := &domain.PackageMetadata{PrebuiltPath: "Source/Net.csproj", PrebuiltConfig: "Release"}
	info, err := c.LoadPrebuilt("Net", "/repo/libs/Net", meta)
	require.NoError(t, err)
	assert.Equal(t, &domain.PrebuiltProjectInfo{
		Path:          "/repo/libs/Net/Source/Net.csproj",
		Configuration: "Release",
		AssemblyName:  "Net",
		Dependencies:  []string{"Core", "Json"},
	}, info)
}

func TestCatalog_LoadPrebuilt_None(t *testing.T) {
	t.Parallel()

	c := newCatalog(t, fstest.MapFS{})
	info, err := c.LoadPrebuilt("Core", "/repo/libs/Core", &domain.PackageMetadata{})
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestCatalog_LoadPrebuilt_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files fstest.MapFS
		path  string
		want  error
	}{
		{"missing", fstest.MapFS{}, "Net.csproj", domain.ErrPrebuiltDescriptorMissing},
		{"invalid xml", fstest.MapFS{"libs/Net/Net.csproj": file("<Project><Unclosed></Project>")}, "Net.csproj", domain.ErrPrebuiltDescriptorInvalid},
		{"assembly mismatch", fstest.MapFS{"libs/Net/Net.csproj": project("Networking")}, "Net.csproj", domain.ErrPrebuiltNameMismatch},
		{"file name mismatch", fstest.MapFS{"libs/Net/Client.csproj": project("Net")}, "Client.csproj", domain.ErrPrebuiltNameMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := newCatalog(t, tt.files)
			_, err := c.LoadPrebuilt("Net", "/repo/libs/Net", &domain.PackageMetadata{PrebuiltPath: tt.path})
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCatalog_LoadPrebuilt_AcceptsPlaceholderAndCase(t *testing.T) {
	t.Parallel()

	c := newCatalog(t, fstest.MapFS{
		"libs/Net/net.csproj": project("$(MSBuildProjectName)"),
	})
	info, err := c.LoadPrebuilt("Net", "/repo/libs/Net", &domain.PackageMetadata{PrebuiltPath: "net.csproj"})
	require.NoError(t, err)
	assert.Equal(t, "$(MSBuildProjectName)", info.AssemblyName)
}
