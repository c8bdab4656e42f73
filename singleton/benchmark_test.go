package singleton

import "testing"

func BenchmarkEagerInstance(b *testing.B) {
	e := MustEager[counter](nil, WithoutTeardown())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.MustInstance()
	}
}

func BenchmarkLazyInstance(b *testing.B) {
	l := NewLazy[counter](nil, WithoutTeardown())
	l.MustInstance()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.MustInstance()
	}
}

func BenchmarkOnceInstance(b *testing.B) {
	o := NewOnce[counter](nil, WithoutTeardown())
	o.MustInstance()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o.MustInstance()
	}
}

func BenchmarkLazyInstanceParallel(b *testing.B) {
	l := NewLazy[counter](nil, WithoutTeardown())
	l.MustInstance()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.MustInstance()
		}
	})
}

func BenchmarkOnceInstanceParallel(b *testing.B) {
	o := NewOnce[counter](nil, WithoutTeardown())
	o.MustInstance()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			o.MustInstance()
		}
	})
}
