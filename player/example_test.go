package player_test

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/algostep/algorithms"
	"github.com/katalvlaran/algostep/player"
	"github.com/katalvlaran/algostep/render"
)

type instant struct{}

func (instant) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

func ExamplePlayer_Run() {
	board := render.NewBoard()
	p := player.New(board, player.WithClock(instant{}))
	_ = p.SetInput(algorithms.Input{Array: []int{5, 3, 8, 1}})
	if err := p.Run(context.Background(), algorithms.Bubble); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(board.Array, p.Status().State)

	_ = p.StepBackward()
	fmt.Println(board.Array, p)
	// Output:
	// [1 3 5 8] idle
	// [1 3 5 8] bubble idle 13/14
}
