package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/model"
)

var errMissingHeader = errors.New("missing key0 key1 version header")

// ParseBlockHash validates a block directory name. Only lowercase hex is
// accepted so that one block maps to exactly one directory.
func ParseBlockHash(name string) (chainhash.Hash, bool) {
	if len(name) != model.BlockHashLength || strings.ToLower(name) != name {
		return chainhash.Hash{}, false
	}
	hash, err := chainhash.NewHashFromStr(name)
	if err != nil {
		return chainhash.Hash{}, false
	}
	return *hash, true
}

// ParseObservation reads one observation: whitespace separated decimal tokens,
// the first three being key0, key1 and version, every following token a short id.
func ParseObservation(r io.Reader) (model.KeyMaterial, model.ShortIDSet, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var header [3]uint64
	for i := range header {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return model.KeyMaterial{}, nil, err
			}
			return model.KeyMaterial{}, nil, errMissingHeader
		}
		v, err := strconv.ParseUint(sc.Text(), 10, 64)
		if err != nil {
			return model.KeyMaterial{}, nil, fmt.Errorf("header token %d: %w", i, err)
		}
		header[i] = v
	}

	ids := make(model.ShortIDSet)
	for n := 0; sc.Scan(); n++ {
		v, err := strconv.ParseUint(sc.Text(), 10, 64)
		if err != nil {
			return model.KeyMaterial{}, nil, fmt.Errorf("short id token %d: %w", n, err)
		}
		ids[v] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return model.KeyMaterial{}, nil, err
	}

	return model.KeyMaterial{Key0: header[0], Key1: header[1], Version: header[2]}, ids, nil
}

// ParseFile parses the observation file at path for the given block.
func ParseFile(blockHash chainhash.Hash, path string) (model.BlockObservation, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.BlockObservation{}, &model.RecordError{Path: path, Kind: model.ErrRecordUnavailable, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	keys, ids, err := ParseObservation(f)
	if err != nil {
		kind := model.ErrMalformedRecord
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			kind = model.ErrRecordUnavailable
		}
		return model.BlockObservation{}, &model.RecordError{Path: path, Kind: kind, Err: err}
	}

	return model.BlockObservation{
		BlockHash:         blockHash,
		Keys:              keys,
		RequestedShortIDs: ids,
		Source:            path,
	}, nil
}
