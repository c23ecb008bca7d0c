package main

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryCache(t *testing.T) {
	Convey("Test memory cache", t, func() {
		c := &MemoryCache{
			Backend:  make(map[string]Mesg),
			Expire:   time.Minute,
			Maxcount: 2,
		}

		Convey("missing keys are not found", func() {
			_, err := c.Get("nope")
			So(err, ShouldHaveSameTypeAs, KeyNotFound{})
		})

		Convey("set then get round-trips", func() {
			So(c.Set("k", []byte("v")), ShouldBeNil)
			So(c.Exists("k"), ShouldEqual, true)

			data, err := c.Get("k")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "v")
		})

		Convey("expired entries are evicted on read", func() {
			c.Expire = -time.Second
			c.Set("k", []byte("v"))

			_, err := c.Get("k")
			So(err, ShouldHaveSameTypeAs, KeyExpired{})
			So(c.Exists("k"), ShouldEqual, false)
		})

		Convey("maxcount bounds the cache", func() {
			c.Set("a", []byte("1"))
			c.Set("b", []byte("2"))
			So(c.Full(), ShouldEqual, true)
			So(c.Set("c", []byte("3")), ShouldHaveSameTypeAs, CacheIsFull{})

			// overwriting a resident key is still allowed
			So(c.Set("a", []byte("9")), ShouldBeNil)
		})
	})
}

func TestKeyGen(t *testing.T) {
	Convey("Test cache key derivation", t, func() {
		a := KeyGen(Query{"abba", "substring", "bb"})
		b := KeyGen(Query{"abba", "substring", "bb"})
		c := KeyGen(Query{"abba", "suffix", "bb"})

		So(a, ShouldEqual, b)
		So(a, ShouldNotEqual, c)
		So(len(a), ShouldEqual, 32)
	})
}
