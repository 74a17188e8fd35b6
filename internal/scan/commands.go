package scan

import (
	"path/filepath"
	"sync"

	"agentctx/internal/fsys"
	"agentctx/internal/logging"
	"agentctx/internal/model"
	"agentctx/internal/util"
)

// CommandExtensions are the file extensions recognized as command files.
var CommandExtensions = []string{".md"}

// commandExcludes are file names never treated as commands.
var commandExcludes = []string{"README.md"}

// Commands flat-lists the workspace and global .cursor/commands directories.
// Command content is loaded raw with no frontmatter extraction; description
// synthesis belongs to the consuming host. The two roots are scanned
// concurrently since they touch disjoint subtrees.
func Commands(fs fsys.FS, projectRoot, userRoot string) []model.Command {
	roots := []struct {
		dir      string
		location model.Location
	}{
		{util.CommandsPath(projectRoot), model.LocationWorkspace},
		{util.CommandsPath(userRoot), model.LocationGlobal},
	}

	results := make([][]model.Command, len(roots))
	var wg sync.WaitGroup
	for i, root := range roots {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = commandsIn(fs, root.dir, root.location)
		}()
	}
	wg.Wait()

	commands := append(results[0], results[1]...)
	logging.Debug("scanned commands",
		logging.Artifact("command"),
		logging.Count(len(commands)),
	)
	return commands
}

func commandsIn(fs fsys.FS, dir string, location model.Location) []model.Command {
	paths := fsys.ListFiles(fs, dir, CommandExtensions, commandExcludes)

	commands := make([]model.Command, 0, len(paths))
	for _, path := range paths {
		cmd := model.Command{
			Path:     path,
			FileName: filepath.Base(path),
			Location: location,
		}
		data, err := fs.ReadFile(path)
		if err != nil {
			logging.Warn("failed to read command file",
				logging.Artifact("command"),
				logging.Location(location.String()),
				logging.Path(path),
				logging.Err(err),
			)
			cmd.Content = model.ErrReadingContent
		} else {
			cmd.Content = string(data)
		}
		commands = append(commands, cmd)
	}
	return commands
}
