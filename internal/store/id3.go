package store

import (
	"fmt"

	"github.com/bogem/id3v2"
	ioutils "github.com/handiism/bulktag/internal/io"
	"github.com/handiism/bulktag/internal/model"
)

// frameIDs maps every recognized tag field to its ID3v2.4 frame ID.
// The comment field is absent here because COMM frames need special
// handling (language + description parts).
var frameIDs = map[model.Field]string{
	model.FieldTitle:       "TIT2",
	model.FieldArtist:      "TPE1",
	model.FieldAlbum:       "TALB",
	model.FieldAlbumArtist: "TPE2",
	model.FieldComposer:    "TCOM",
	model.FieldConductor:   "TPE3",
	model.FieldGenre:       "TCON",
	model.FieldDate:        "TDRC",
	model.FieldBPM:         "TBPM",
	model.FieldKey:         "TKEY",
	model.FieldMood:        "TMOO",
	model.FieldLyricist:    "TEXT",
	model.FieldRemixer:     "TPE4",
	model.FieldLabel:       "TPUB",
	model.FieldISRC:        "TSRC",
	model.FieldCopyright:   "TCOP",
}

// ID3Store is the TagStore implementation for MP3 files.
//
// ID3Store maps the recognized field set onto ID3v2 frames and leaves
// every unmapped frame untouched, so store-specific extension frames
// (pictures, chapters, podcast frames, ...) survive a save unchanged.
//
// Example:
//
//	st := store.NewID3Store(false)
//	record, err := st.Load("/music/track.mp3")
//	record[model.FieldTitle] = "Fixed Title"
//	err = st.Save("/music/track.mp3", record)
type ID3Store struct {
	// backup controls whether the original file is copied to
	// <path>.bak before its first save in this session.
	backup bool

	backedUp map[string]bool
}

// NewID3Store creates an ID3Store. With backup set, each file is
// copied aside once before its first save.
func NewID3Store(backup bool) *ID3Store {
	return &ID3Store{backup: backup, backedUp: make(map[string]bool)}
}

// Load reads the tag record of the MP3 file at path.
//
// Every recognized field is present in the result; fields whose frame
// is missing from the file come back as the empty string.
func (s *ID3Store) Load(path string) (model.Record, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer tag.Close()

	record := model.NewRecord()
	for field, frameID := range frameIDs {
		record[field] = tag.GetTextFrame(frameID).Text
	}
	record[model.FieldComment] = readComment(tag)

	return record, nil
}

// Save writes the tag record back to the MP3 file at path.
//
// Empty values delete the corresponding frame; everything else is
// written as a UTF-8 text frame. Frames outside the recognized field
// mapping are passed through untouched.
func (s *ID3Store) Save(path string, record model.Record) error {
	if s.backup && !s.backedUp[path] {
		if err := ioutils.CopyFile(path, path+".bak"); err != nil {
			return fmt.Errorf("backup %s: %w", path, err)
		}
		s.backedUp[path] = true
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer tag.Close()

	for field, frameID := range frameIDs {
		value := record[field]
		if value == "" {
			tag.DeleteFrames(frameID)
			continue
		}
		tag.AddTextFrame(frameID, id3v2.EncodingUTF8, value)
	}

	writeComment(tag, record[model.FieldComment])

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// readComment returns the text of the file's first comment frame.
func readComment(tag *id3v2.Tag) string {
	frames := tag.GetFrames(tag.CommonID("Comments"))
	for _, f := range frames {
		if comment, ok := f.(id3v2.CommentFrame); ok {
			return comment.Text
		}
	}
	return ""
}

// writeComment replaces the file's comment frames with a single
// English COMM frame, or removes them all when value is empty.
func writeComment(tag *id3v2.Tag, value string) {
	commID := tag.CommonID("Comments")
	tag.DeleteFrames(commID)
	if value == "" {
		return
	}
	tag.AddCommentFrame(id3v2.CommentFrame{
		Encoding:    id3v2.EncodingUTF8,
		Language:    "eng",
		Description: "",
		Text:        value,
	})
}
