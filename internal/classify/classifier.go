package classify

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"remaster/internal/config"
	"remaster/internal/fileutil"
	"remaster/internal/logging"
	"remaster/internal/services"
)

var urlPrefixes = []string{"http://", "https://", "youtube.com", "spotify:"}

var playlistExtensions = map[string]struct{}{
	".txt": {},
	".m3u": {},
	".pls": {},
}

// Classifier turns raw input descriptors into typed jobs.
type Classifier struct {
	searchRoots []string
	tempDir     string
	logger      *slog.Logger
}

// New builds a classifier using the configured search roots and temp
// directory for archive extraction.
func New(cfg *config.Config, logger *slog.Logger) *Classifier {
	return &Classifier{
		searchRoots: cfg.Search.Roots,
		tempDir:     cfg.Paths.TempDir,
		logger:      logging.WithComponent(logger, "classify"),
	}
}

// Classify resolves input into a job. Checks run in order: regular file,
// directory, then URL or search token for paths that do not exist.
func (c *Classifier) Classify(input string) (*Job, error) {
	info, err := os.Stat(input)
	switch {
	case err == nil && info.Mode().IsRegular():
		return c.classifyFile(input)
	case err == nil && info.IsDir():
		return c.classifyDir(input, input)
	case err == nil:
		return nil, services.Wrap(services.ErrUnsupportedInput, "classify", "stat", input, nil)
	default:
		return c.classifyToken(input)
	}
}

func (c *Classifier) classifyFile(path string) (*Job, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case fileutil.IsAudioFile(path):
		job := &Job{Kind: KindSingle, Input: path, Targets: []string{path}, Genre: DetectGenre(path)}
		c.logger.Debug("classified single file", logging.String("target", path), logging.String("genre", job.Genre))
		return job, nil

	case ext == ".zip":
		return c.classifyArchive(path)

	default:
		if _, ok := playlistExtensions[ext]; ok {
			return c.classifyPlaylist(path)
		}
		return nil, services.Wrap(services.ErrUnsupportedInput, "classify", "file",
			"unrecognized extension "+ext, nil)
	}
}

func (c *Classifier) classifyArchive(path string) (*Job, error) {
	dest := filepath.Join(c.tempDir, "extract-"+uuid.NewString())
	if err := fileutil.ExtractZip(path, dest); err != nil {
		return nil, services.Wrap(services.ErrArchiveExtraction, "classify", "extract", path, err)
	}
	c.logger.Debug("extracted archive", logging.String("archive", path), logging.String("dest", dest))

	job, err := c.classifyDir(path, dest)
	if err != nil {
		os.RemoveAll(dest)
		return nil, err
	}
	job.ExtractedDir = dest
	return job, nil
}

func (c *Classifier) classifyPlaylist(path string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrInputNotFound, "classify", "playlist", path, err)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	var targets []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry := line
		if !filepath.IsAbs(entry) {
			entry = filepath.Join(dir, entry)
		}
		if info, err := os.Stat(entry); err == nil && info.Mode().IsRegular() {
			targets = append(targets, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, services.Wrap(services.ErrUnsupportedInput, "classify", "playlist", path, err)
	}
	if len(targets) == 0 {
		return nil, services.Wrap(services.ErrNoAudioFiles, "classify", "playlist",
			"no resolvable entries in "+path, nil)
	}

	c.logger.Debug("classified playlist", logging.String("playlist", path), logging.Int("entries", len(targets)))
	return &Job{Kind: KindPlaylist, Input: path, Targets: targets}, nil
}

func (c *Classifier) classifyDir(input, dir string) (*Job, error) {
	files, err := fileutil.ScanAudioDir(dir)
	if err != nil {
		return nil, services.Wrap(services.ErrInputNotFound, "classify", "scan", dir, err)
	}
	if len(files) == 0 {
		return nil, services.Wrap(services.ErrNoAudioFiles, "classify", "scan", dir, nil)
	}

	if LooksLikeAlbum(files) {
		genre := DetectAlbumGenre(files)
		c.logger.Debug("classified album", logging.String("dir", dir),
			logging.Int("tracks", len(files)), logging.String("genre", genre))
		return &Job{Kind: KindAlbum, Input: input, Targets: files, Genre: genre}, nil
	}

	c.logger.Debug("classified batch", logging.String("dir", dir), logging.Int("files", len(files)))
	return &Job{Kind: KindBatch, Input: input, Targets: files}, nil
}

func (c *Classifier) classifyToken(token string) (*Job, error) {
	for _, prefix := range urlPrefixes {
		if strings.HasPrefix(strings.ToLower(token), prefix) {
			c.logger.Debug("classified url", logging.String("url", token))
			return &Job{Kind: KindURL, Input: token}, nil
		}
	}

	matches := fileutil.FindMatches(c.searchRoots, token)
	switch len(matches) {
	case 0:
		return nil, services.Wrap(services.ErrInputNotFound, "classify", "search",
			"no audio files matching "+token, nil)
	case 1:
		c.logger.Debug("search resolved to single file", logging.String("query", token),
			logging.String("target", matches[0]))
		return &Job{Kind: KindSingle, Input: token, Targets: matches, Genre: DetectGenre(matches[0])}, nil
	default:
		c.logger.Debug("search resolved to batch", logging.String("query", token),
			logging.Int("matches", len(matches)))
		return &Job{Kind: KindBatch, Input: token, Targets: matches}, nil
	}
}
