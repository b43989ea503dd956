package redis

import (
	"fmt"

	"github.com/mcoot/hangman-go/internal/model"
)

// keys builds the Redis key layout under one prefix P, for game G:
//
//	P:log:{G}     sorted set of "seq:json" members scored by seq
//	P:seq:{G}     INCR counter handing out seq
//	P:dictionary  set of words
//
// The braces are a cluster hash tag, so a game's two keys share a slot and
// the append script can touch both.
type keys string

func (k keys) log(id model.GameID) string {
	return fmt.Sprintf("%s:log:{%s}", k, id)
}

func (k keys) seq(id model.GameID) string {
	return fmt.Sprintf("%s:seq:{%s}", k, id)
}

func (k keys) dictionary() string {
	return string(k) + ":dictionary"
}
