// Package logfile feeds timestamp instants to a receiver from a local
// text file, re-extracting whenever the file is written to.
package logfile

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sporadisk/punchout/extract"
	"github.com/sporadisk/punchout/timelog"
)

type Subscriber struct {
	filePath string
	lastRead time.Time
	mu       sync.Mutex
	receiver timelog.Receiver
}

func NewSubscriber(filePath string) (*Subscriber, error) {
	return &Subscriber{filePath: filePath}, nil
}

func (s *Subscriber) Subscribe(receiver timelog.Receiver) error {
	s.receiver = receiver

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer watcher.Close()

	go s.watchResponder(watcher)

	err = watcher.Add(s.filePath)
	if err != nil {
		return fmt.Errorf("watcher.Add: %w", err)
	}

	// Deliver the current file contents once before waiting for writes.
	err = s.deliver(s.filePath)
	if err != nil {
		log.Printf("initial read: %s", err.Error())
	}

	// Block main goroutine forever.
	// TODO: implement proper shutdown handling
	<-make(chan struct{})
	return nil
}

func (s *Subscriber) watchResponder(watcher *fsnotify.Watcher) {

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				log.Println("watcher.Events is not okay.")
				return
			}
			if event.Has(fsnotify.Write) {
				err := s.reactToFileWrite(event.Name)
				if err != nil {
					log.Printf("reactToFileWrite: %s", err.Error())
					return
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				log.Println("watcher.Errors is not okay.")
				return
			}
			log.Println("watcher.Errors: ", err)
		}
	}
}

func (s *Subscriber) reactToFileWrite(filepath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	timeElapsed := time.Since(s.lastRead)
	if timeElapsed < time.Second { // react at most once per second
		return nil
	}
	s.lastRead = time.Now()

	return s.deliver(filepath)
}

func (s *Subscriber) deliver(filepath string) error {
	ex := extract.Extractor{}
	err := ex.Init()
	if err != nil {
		return fmt.Errorf("extractor init: %w", err)
	}

	b, err := readLoop(filepath)
	if err != nil {
		return fmt.Errorf("readLoop: %w", err)
	}

	instants := ex.Extract(string(b))
	err = s.receiver.Receive(instants, ex.Warnings())
	if err != nil {
		return fmt.Errorf("error from instant receiver: %w", err)
	}

	return nil
}

// readLoop tries to read the file a lot
func readLoop(filepath string) ([]byte, error) {
	for i := 0; i < 100; i++ {
		f, err := os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("os.Open: %w", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("io.ReadAll: %w", err)
		}

		if len(b) == 0 {
			// sometimes we get an empty file, probably because the file
			// is being written to
			time.Sleep(time.Millisecond * 100)
			continue
		}

		return b, nil
	}

	return nil, fmt.Errorf("readLoop: too many retries")
}
