package scan

import (
	"path/filepath"
	"sync"
	"time"

	"agentctx/internal/fsys"
	"agentctx/internal/logging"
	"agentctx/internal/model"
	"agentctx/internal/parser"
	"agentctx/internal/util"
)

// specFileName is the recognized spec file inside a spec domain directory.
const specFileName = "spec.md"

// Artifacts performs the three project artifact sub-scans concurrently:
// the AGENTS.md project doc, the specs/ domain entries, and the schemas/
// JSON files. Each category reports its own existence independently;
// HasAnyArtifact is the OR of the three.
func Artifacts(fs fsys.FS, projectRoot string) model.ArtifactBundle {
	var bundle model.ArtifactBundle
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		bundle.Doc = projectDoc(fs, projectRoot)
	}()
	go func() {
		defer wg.Done()
		bundle.Specs = specEntries(fs, projectRoot)
	}()
	go func() {
		defer wg.Done()
		bundle.Schemas = schemaEntries(fs, projectRoot)
	}()
	wg.Wait()

	bundle.HasAnyArtifact = bundle.Doc.Exists || bundle.Specs.Exists || bundle.Schemas.Exists
	logging.Debug("scanned project artifacts",
		logging.Artifact("project"),
		logging.Path(projectRoot),
	)
	return bundle
}

// projectDoc stats and parses {root}/AGENTS.md. Anything other than a
// readable regular file reports non-existent.
func projectDoc(fs fsys.FS, projectRoot string) model.ProjectDoc {
	path := util.ProjectDocPath(projectRoot)

	stat, err := fs.Stat(path)
	if err != nil || stat.Kind != fsys.KindFile {
		return model.ProjectDoc{Exists: false}
	}
	data, err := fs.ReadFile(path)
	if err != nil {
		logging.Warn("failed to read project doc",
			logging.Artifact("project"),
			logging.Path(path),
			logging.Err(err),
		)
		return model.ProjectDoc{Exists: false}
	}
	return parser.ParseProjectDoc(path, string(data))
}

// specEntries lists {root}/specs and records one entry per subdirectory
// containing a spec.md.
func specEntries(fs fsys.FS, projectRoot string) model.SpecList {
	root := util.SpecsPath(projectRoot)

	stat, err := fs.Stat(root)
	if err != nil || stat.Kind != fsys.KindDirectory {
		return model.SpecList{Exists: false, Entries: []model.SpecEntry{}}
	}

	list := model.SpecList{Exists: true, Path: root, Entries: []model.SpecEntry{}}
	for _, domain := range fsys.ListDirs(fs, root) {
		specPath := filepath.Join(root, domain, specFileName)
		data, err := fs.ReadFile(specPath)
		if err != nil {
			// A domain directory with no readable spec.md is not an entry.
			continue
		}
		content := string(data)
		entry := model.SpecEntry{
			Domain:       domain,
			Path:         specPath,
			HasBlueprint: parser.HasSection(content, "Blueprint"),
			HasContract:  parser.HasSection(content, "Contract"),
		}
		if stat, err := fs.Stat(specPath); err == nil && stat.ModTimeMillis != nil {
			ts := time.UnixMilli(*stat.ModTimeMillis).UTC().Format(time.RFC3339)
			entry.LastModified = &ts
		}
		list.Entries = append(list.Entries, entry)
	}
	return list
}

// schemaEntries lists {root}/schemas and extracts the $id of every JSON file.
func schemaEntries(fs fsys.FS, projectRoot string) model.SchemaList {
	root := util.SchemasPath(projectRoot)

	stat, err := fs.Stat(root)
	if err != nil || stat.Kind != fsys.KindDirectory {
		return model.SchemaList{Exists: false, Entries: []model.SchemaEntry{}}
	}

	list := model.SchemaList{Exists: true, Path: root, Entries: []model.SchemaEntry{}}
	for _, path := range fsys.ListFiles(fs, root, []string{".json"}, nil) {
		entry := model.SchemaEntry{
			Name: util.StripExt(filepath.Base(path)),
			Path: path,
		}
		if data, err := fs.ReadFile(path); err == nil {
			entry.SchemaID = parser.ExtractSchemaID(data)
		}
		list.Entries = append(list.Entries, entry)
	}
	return list
}
