package config

import (
	"bytes"
	"slices"

	"go.trai.ch/weave/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// AddTarget appends a target to the project's weave.yaml, keeping comments and key order.
func (l *Loader) AddTarget(paths domain.ProjectPaths, target domain.ProjectTarget) error {
	path := paths.ProjectConfigPath()
	doc, err := l.readDocument(path)
	if err != nil {
		return err
	}

	seq := sequenceFor(doc.Content[0], "targets")
	for _, item := range seq.Content {
		var dto TargetDTO
		if item.Decode(&dto) == nil && dto.Platform == string(target.Platform) && dto.Tag == target.Tag {
			return nil
		}
	}

	entry := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Style: yaml.FlowStyle}
	entry.Content = append(entry.Content, scalar("platform"), scalar(string(target.Platform)))
	if target.Tag != "" {
		entry.Content = append(entry.Content, scalar("tag"), scalar(target.Tag))
	}
	seq.Content = append(seq.Content, entry)

	l.Logger.Debug("adding target " + target.DisplayName() + " to " + path)
	return l.writeDocument(path, doc)
}

// AddPackage appends a package to the plugin or asset list of the project's weave.yaml.
func (l *Loader) AddPackage(paths domain.ProjectPaths, name string, tier domain.Tier) error {
	path := paths.ProjectConfigPath()
	doc, err := l.readDocument(path)
	if err != nil {
		return err
	}

	root := doc.Content[0]
	for _, key := range []string{"pluginPackages", "assetPackages"} {
		if seq := lookup(root, key); seq != nil && slices.ContainsFunc(seq.Content, func(n *yaml.Node) bool {
			return n.Value == name
		}) {
			return domain.Annotate(domain.ErrPackageAlreadyListed, "package", name, "list", key, "path", path)
		}
	}

	key := "pluginPackages"
	if tier == domain.AssetTier {
		key = "assetPackages"
	}
	seq := sequenceFor(root, key)
	seq.Content = append(seq.Content, scalar(name))

	return l.writeDocument(path, doc)
}

// CreateProjectConfig writes the initial weave.yaml of a new project.
func (l *Loader) CreateProjectConfig(paths domain.ProjectPaths, cfg *domain.ProjectConfig) error {
	path := paths.ProjectConfigPath()
	if _, err := l.FS.Stat(path); err == nil {
		return domain.Annotate(domain.ErrProjectExists, "project", paths.ProjectName(), "path", path)
	}

	file := ProjectFile{
		PluginPackages:      cfg.PluginPackages,
		AssetPackages:       cfg.AssetPackages,
		CustomBuildProjects: cfg.CustomBuildProjectPatterns,
		PackageRoots:        cfg.Roots.Libraries,
		PackageProjectRoots: cfg.Roots.Projects,
		EngineSettingsPath:  cfg.EngineSettingsPath,
		PackageManagerPath:  cfg.PackageManagerPath,
	}
	for _, t := range cfg.Targets {
		file.Targets = append(file.Targets, TargetDTO{Platform: string(t.Platform), Tag: t.Tag})
	}

	var doc yaml.Node
	if err := doc.Encode(&file); err != nil {
		return domain.Annotate(domain.ErrConfigWriteFailed, "path", path, "cause", err.Error())
	}
	return l.writeDocument(path, &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{&doc}})
}

// readDocument decodes a config file into a document node whose root is a mapping.
func (l *Loader) readDocument(path string) (*yaml.Node, error) {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, domain.Annotate(domain.ErrConfigReadFailed, "path", path, "cause", err.Error())
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, domain.Annotate(domain.ErrConfigParseFailed, "path", path, "cause", err.Error())
	}

	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode}
	}
	if len(doc.Content) == 0 {
		doc.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}
	if doc.Content[0].Kind != yaml.MappingNode {
		return nil, domain.Annotate(domain.ErrConfigParseFailed, "path", path, "cause", "top level is not a mapping")
	}
	return &doc, nil
}

func (l *Loader) writeDocument(path string, doc *yaml.Node) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return domain.Annotate(domain.ErrConfigWriteFailed, "path", path, "cause", err.Error())
	}
	if err := enc.Close(); err != nil {
		return domain.Annotate(domain.ErrConfigWriteFailed, "path", path, "cause", err.Error())
	}

	if err := l.FS.WriteFile(path, buf.Bytes()); err != nil {
		return domain.Annotate(domain.ErrConfigWriteFailed, "path", path, "cause", err.Error())
	}
	return nil
}

// lookup returns the value node of key in a mapping, or nil.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// sequenceFor returns the sequence stored under key, creating it when absent or null.
func sequenceFor(mapping *yaml.Node, key string) *yaml.Node {
	value := lookup(mapping, key)
	if value == nil {
		value = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		mapping.Content = append(mapping.Content, scalar(key), value)
		return value
	}
	if value.Kind != yaml.SequenceNode {
		*value = yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", HeadComment: value.HeadComment, LineComment: value.LineComment}
	}
	return value
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
