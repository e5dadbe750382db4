package engine

import (
	"testing"
)

func TestNewBoardEmpty(t *testing.T) {
	b := newBoard(9)
	if b.Size() != 9 {
		t.Fatalf("size should be 9, got %d", b.Size())
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if b.At(x, y) != NoToken {
				t.Fatalf("cell (%d,%d) should start empty", x, y)
			}
		}
	}
}

func TestBoardInBounds(t *testing.T) {
	b := newBoard(5)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{4, 4, true},
		{-1, 0, false},
		{0, -1, false},
		{5, 0, false},
		{0, 5, false},
	}
	for _, c := range cases {
		if got := b.InBounds(c.x, c.y); got != c.want {
			t.Fatalf("InBounds(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestBoardAtOutOfBounds(t *testing.T) {
	b := newBoard(5)
	if b.At(-1, 2) != NoToken {
		t.Fatal("out of bounds cell should read as NoToken")
	}
}

func TestBoardPlaceAndClear(t *testing.T) {
	b := newBoard(5)
	b.place(2, 3, TokenWhite)
	if b.At(2, 3) != TokenWhite {
		t.Fatalf("expected white at (2,3), got %v", b.At(2, 3))
	}
	b.clear(2, 3)
	if b.At(2, 3) != NoToken {
		t.Fatal("clear should empty the cell")
	}
}

func TestBoardPlaceNeverOverwrites(t *testing.T) {
	b := newBoard(5)
	b.place(1, 1, TokenBlack)
	b.place(1, 1, TokenRed)
	if b.At(1, 1) != TokenBlack {
		t.Fatalf("occupied cell must not be overwritten, got %v", b.At(1, 1))
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		token Token
		want  string
	}{
		{NoToken, "empty"},
		{TokenBlack, "black"},
		{TokenWhite, "white"},
		{TokenRed, "red"},
		{TokenBlue, "blue"},
	}
	for _, c := range cases {
		if got := c.token.String(); got != c.want {
			t.Fatalf("Token(%d).String() = %q, want %q", c.token, got, c.want)
		}
	}
}
