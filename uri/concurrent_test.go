package uri

import (
	"reflect"
	"sync"
	"testing"
)

func TestExtractConcurrent(t *testing.T) {
	t.Parallel()

	const (
		workers = 8
		iter    = 50
	)
	s := "ИНН 7701234567, КПП 770101001, e-mail: info@condo.ru, КН 77:01:0001001:1234, www.condo.ru"
	want := Extract(s)
	if len(want) != 5 {
		t.Fatalf("got %d entities, want 5: %v", len(want), want)
	}

	var wg sync.WaitGroup
	errs := make(chan string, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iter; i++ {
				if got := Extract(s); !reflect.DeepEqual(got, want) {
					errs <- "concurrent Extract differs"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
