package store

import (
	"context"
	"fmt"

	"github.com/bogem/id3v2"
	ioutils "github.com/handiism/bulktag/internal/io"
)

// ResizeArtwork re-encodes the embedded front-cover picture of the MP3
// file at path so it fits within maxSize pixels on both axes, and
// converts it to JPEG. A maxSize of zero or less skips the scaling and
// only normalizes the picture to JPEG.
//
// The returned bool reports whether the file carried artwork at all.
// Files without an attached picture are left untouched and are not an
// error.
//
// Example:
//
//	resized, err := store.ResizeArtwork(ctx, "/music/track.mp3", 1000)
func ResizeArtwork(ctx context.Context, path string, maxSize int) (bool, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer tag.Close()

	picID := tag.CommonID("Attached picture")
	frames := tag.GetFrames(picID)

	var picture []byte
	for _, f := range frames {
		pic, ok := f.(id3v2.PictureFrame)
		if !ok {
			continue
		}
		if pic.PictureType == id3v2.PTFrontCover || picture == nil {
			picture = pic.Picture
		}
	}
	if picture == nil {
		return false, nil
	}

	svc := ioutils.NewImageService()
	var resized []byte
	if maxSize > 0 {
		resized, err = svc.ResizeImage(ctx, picture, maxSize, maxSize)
	} else {
		resized, err = svc.ConvertToJPEG(ctx, picture)
	}
	if err != nil {
		return true, fmt.Errorf("resize artwork of %s: %w", path, err)
	}

	tag.DeleteFrames(picID)
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     resized,
	})

	if err := tag.Save(); err != nil {
		return true, fmt.Errorf("save %s: %w", path, err)
	}
	return true, nil
}
