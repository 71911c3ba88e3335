package anlz

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// bufferPath names in-memory sources in errors and logs.
const bufferPath = "<buffer>"

// Load reads and extracts the ANLZ file at path using the given profile.
//
// The file is decoded in full and closed before Load returns, on success
// and on failure. A container that does not parse fails with a
// *MalformedInputError and no Database. Missing tags never fail the load;
// they leave their field unset and are listed in Database.Warnings.
//
// Example:
//
//	db, err := anlz.Load(anlz.ProfileDAT, "PIONEER/USBANLZ/P016/0000875E/ANLZ0000.DAT")
//	if err != nil {
//		return err
//	}
//	beats, err := db.BeatGrid()
func Load(profile Profile, path string, opts ...Option) (*Database, error) {
	options := applyOptions(opts)
	if !profile.Valid() {
		return nil, unsupportedProfile(path, profile)
	}

	options.logger.Debug("loading ANLZ file", zap.String("path", path), zap.Stringer("profile", profile))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return load(profile, f, stat.Size(), path, options)
}

// LoadFile loads path with the profile implied by its extension (.DAT or .EXT).
func LoadFile(path string, opts ...Option) (*Database, error) {
	profile, err := DetectProfile(path)
	if err != nil {
		return nil, err
	}
	return Load(profile, path, opts...)
}

// LoadBuffer extracts an ANLZ container held in memory.
func LoadBuffer(profile Profile, data []byte, opts ...Option) (*Database, error) {
	options := applyOptions(opts)
	options.logger.Debug("loading ANLZ buffer", zap.Stringer("profile", profile), zap.Int("size", len(data)))
	return load(profile, bytes.NewReader(data), int64(len(data)), bufferPath, options)
}

// LoadReader extracts an ANLZ container from r, which holds size bytes.
// The caller keeps ownership of r.
func LoadReader(profile Profile, r io.ReaderAt, size int64, opts ...Option) (*Database, error) {
	return load(profile, r, size, bufferPath, applyOptions(opts))
}

// load decodes the container once, routes the tags and drops them.
// The decoded tags live only in this call; the Database keeps just the
// entry slices it was routed.
func load(profile Profile, r io.ReaderAt, size int64, path string, o *loadOptions) (*Database, error) {
	table, ok := routeTables[profile]
	if !ok {
		return nil, unsupportedProfile(path, profile)
	}
	if o.maxSize > 0 && size > o.maxSize {
		return nil, &InputTooLargeError{Path: path, Size: size, Limit: o.maxSize}
	}

	log := o.logger.With(zap.String("path", path), zap.Stringer("profile", profile))

	tags, err := o.decode(r, size, path)
	if err != nil {
		log.Debug("decoding failed", zap.Error(err))
		return nil, fmt.Errorf("load %s: %w", profile, err)
	}
	log.Debug("loaded tags", zap.Int("tags", len(tags)))

	db := &Database{
		Profile: profile,
		Path:    path,
	}
	ex := &extractor{db: db, table: table, log: log}
	ex.run(tags)

	if o.ignoreWarnings {
		db.Warnings = nil
	}

	return db, nil
}

func unsupportedProfile(path string, profile Profile) *UnsupportedProfileError {
	return &UnsupportedProfileError{Path: path, Reason: fmt.Sprintf("profile %s", profile)}
}
