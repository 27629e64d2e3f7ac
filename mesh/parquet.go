package mesh

import (
	"github.com/parquet-go/parquet-go"

	"github.com/kostinio/bvh/geom"
	"github.com/kostinio/bvh/internal/errors"
)

// triangleRow is the flat row schema for triangle soup files: nine float32
// columns, one vertex coordinate each.
type triangleRow struct {
	X0 float32 `parquet:"x0"`
	Y0 float32 `parquet:"y0"`
	Z0 float32 `parquet:"z0"`
	X1 float32 `parquet:"x1"`
	Y1 float32 `parquet:"y1"`
	Z1 float32 `parquet:"z1"`
	X2 float32 `parquet:"x2"`
	Y2 float32 `parquet:"y2"`
	Z2 float32 `parquet:"z2"`
}

// ReadTriangles loads a triangle soup from a parquet file written by
// WriteTriangles (or any file matching its nine-column schema).
func ReadTriangles(path string) ([]Triangle[float32], error) {
	rows, err := parquet.ReadFile[triangleRow](path)
	if err != nil {
		return nil, errors.WrapStorageError(err, "read_triangles", "reading parquet triangle soup").
			WithContext("path", path)
	}

	tris := make([]Triangle[float32], len(rows))
	for i, r := range rows {
		tris[i] = Triangle[float32]{
			V0: geom.V3(r.X0, r.Y0, r.Z0),
			V1: geom.V3(r.X1, r.Y1, r.Z1),
			V2: geom.V3(r.X2, r.Y2, r.Z2),
		}
	}
	return tris, nil
}

// WriteTriangles writes a triangle soup as zstd-compressed parquet.
func WriteTriangles(path string, tris []Triangle[float32]) error {
	rows := make([]triangleRow, len(tris))
	for i, t := range tris {
		rows[i] = triangleRow{
			X0: t.V0.X, Y0: t.V0.Y, Z0: t.V0.Z,
			X1: t.V1.X, Y1: t.V1.Y, Z1: t.V1.Z,
			X2: t.V2.X, Y2: t.V2.Y, Z2: t.V2.Z,
		}
	}

	if err := parquet.WriteFile(path, rows, parquet.Compression(&parquet.Zstd)); err != nil {
		return errors.WrapStorageError(err, "write_triangles", "writing parquet triangle soup").
			WithContext("path", path).
			WithContext("triangles", len(tris))
	}
	return nil
}
