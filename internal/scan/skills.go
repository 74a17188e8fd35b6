package scan

import (
	"path/filepath"
	"sync"

	"agentctx/internal/fsys"
	"agentctx/internal/logging"
	"agentctx/internal/model"
	"agentctx/internal/parser"
	"agentctx/internal/util"
)

// skillFileName is the single recognized skill file inside a skill directory.
const skillFileName = "SKILL.md"

// Skills lists the immediate subdirectories of the workspace and global
// .cursor/skills roots and parses each one's SKILL.md. A subdirectory with no
// readable SKILL.md still yields an entry, carrying the sentinel content and
// nil metadata and named after the subdirectory itself. The two roots are
// scanned concurrently.
func Skills(fs fsys.FS, projectRoot, userRoot string) []model.Skill {
	roots := []struct {
		dir      string
		location model.Location
	}{
		{util.SkillsPath(projectRoot), model.LocationWorkspace},
		{util.SkillsPath(userRoot), model.LocationGlobal},
	}

	results := make([][]model.Skill, len(roots))
	var wg sync.WaitGroup
	for i, root := range roots {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = skillsIn(fs, root.dir, root.location)
		}()
	}
	wg.Wait()

	skills := append(results[0], results[1]...)
	logging.Debug("scanned skills",
		logging.Artifact("skill"),
		logging.Count(len(skills)),
	)
	return skills
}

func skillsIn(fs fsys.FS, dir string, location model.Location) []model.Skill {
	names := fsys.ListDirs(fs, dir)

	skills := make([]model.Skill, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name, skillFileName)
		skill := model.Skill{
			Path: path,
			// The subdirectory is the skill's identity, not SKILL.md.
			FileName: name,
			Location: location,
		}

		data, err := fs.ReadFile(path)
		if err != nil {
			logging.Warn("failed to read skill file",
				logging.Artifact("skill"),
				logging.Location(location.String()),
				logging.Path(path),
				logging.Err(err),
			)
			skill.Content = model.ErrReadingContent
		} else {
			skill.Content, skill.Metadata = parser.ParseSkill(data)
		}
		skills = append(skills, skill)
	}
	return skills
}
