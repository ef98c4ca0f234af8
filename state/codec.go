/*
 * codec.go, part of gospectra.
 *
 * Copyright 2021 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package state

import (
	"compress/flate"
	"compress/gzip"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdrc struct {
	*zstd.Decoder
}

//Close closes the decoder. It can not be used after this call
func (z zstdrc) Close() error {
	z.Decoder.Close()
	return nil
}

//codec holds the compressed reader and writer constructors for one file type.
type codec struct {
	name      string
	newReader func(io.Reader) (io.ReadCloser, error)
	newWriter func(io.Writer) (io.WriteCloser, error)
}

var zstdCodec = codec{
	name: "zstd",
	newReader: func(r io.Reader) (io.ReadCloser, error) {
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdrc{d}, nil
	},
	newWriter: func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	},
}

var gzipCodec = codec{
	name:      "gzip",
	newReader: func(r io.Reader) (io.ReadCloser, error) { return gzip.NewReader(r) },
	newWriter: func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(w, gzip.BestCompression) },
}

var flateCodec = codec{
	name:      "flate",
	newReader: func(r io.Reader) (io.ReadCloser, error) { return flate.NewReader(r), nil },
	newWriter: func(w io.Writer) (io.WriteCloser, error) { return flate.NewWriter(w, flate.BestCompression) },
}

//codecFor picks the compression from the extension of name.
//.gz is gzip, .flate and .zz are raw deflate. Anything else is zstd.
func codecFor(name string) codec {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return gzipCodec
	case ".flate", ".zz":
		return flateCodec
	default:
		return zstdCodec
	}
}
