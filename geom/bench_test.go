package geom_test

import (
	"testing"

	"github.com/hupe1980/seedgo/geom"
	"github.com/hupe1980/seedgo/numrange"
	"github.com/hupe1980/seedgo/rng"
	"github.com/hupe1980/seedgo/util"
)

func benchVectors(b *testing.B, n int) []*geom.Vector3 {
	b.Helper()
	vectors, err := util.RandomVectors(rng.NewXorshift128Plus(42, 1337), n, numrange.MustMinMaxFinite(-100, 100))
	if err != nil {
		b.Fatal(err)
	}
	return vectors
}

func BenchmarkVector3Dot(b *testing.B) {
	vectors := benchVectors(b, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vectors[i%1024].Dot(vectors[(i+1)%1024])
	}
}

func BenchmarkVector3Normalize(b *testing.B) {
	vectors := benchVectors(b, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = vectors[i%1024].Clone().Normalize()
	}
}

func BenchmarkVector3Rotate(b *testing.B) {
	vectors := benchVectors(b, 1024)
	axis := geom.MustVector3(0, 1, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = vectors[i%1024].Clone().Rotate(axis, 33)
	}
}

func BenchmarkObjectCoordinateSystem(b *testing.B) {
	rotations, err := util.RandomRotations(rng.NewXorshift128Plus(42, 1337), 256)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rotations[i%256].ObjectCoordinateSystem()
	}
}
