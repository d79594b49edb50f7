package classify

// Kind tags the job variant a raw input resolved to.
type Kind string

const (
	// KindSingle is one audio file mastered on its own.
	KindSingle Kind = "single"
	// KindAlbum is a directory of tracks treated as one coherent release.
	KindAlbum Kind = "album"
	// KindBatch is a loose collection of unrelated audio files.
	KindBatch Kind = "batch"
	// KindPlaylist is a playlist file expanded into its entries.
	KindPlaylist Kind = "playlist"
	// KindURL is a URL-like token. Remote inputs are not fetched.
	KindURL Kind = "url"
	// KindSearch is a search token before resolution. Classification
	// resolves searches into single or batch jobs, so finished jobs never
	// carry this kind.
	KindSearch Kind = "search"
)

// Job is the classified unit of work derived from one user input. Jobs are
// immutable after classification; re-classification produces a new Job.
type Job struct {
	Kind    Kind
	Input   string
	Targets []string

	// Genre is the detected genre hint for single and album jobs, empty
	// otherwise. Batch items are detected per file downstream.
	Genre string

	// ExtractedDir is the temp directory an archive was unpacked into,
	// empty for non-archive inputs. The caller owns cleanup.
	ExtractedDir string
}
