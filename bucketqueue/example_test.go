package bucketqueue_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bucketqueue"
)

type job struct {
	name string
	cost int
}

func (j job) PriorityValue() int { return j.cost }

func ExampleQueue() {
	q, _ := bucketqueue.New[job](100, 10)
	_ = q.Insert(job{"paint", 40})
	_ = q.Insert(job{"sand", 15})
	_ = q.Insert(job{"prime", 22})

	for q.Len() > 0 {
		j, _ := q.ExtractMin(true)
		fmt.Println(j.name, j.cost)
	}
	// Output:
	// sand 15
	// prime 22
	// paint 40
}
