package network

import "testing"

func TestTrafficStatistics(t *testing.T) {
	ts := NewTrafficStatistics()
	ts.IncrRead(100)
	ts.IncrRead(50)
	ts.IncrWrite(200)

	readCount, writeCount, readSize, writeSize := ts.Get()
	if readCount != 2 || readSize != 150 {
		t.Fatalf("read stats broken, count=%d size=%d", readCount, readSize)
	}
	if writeCount != 1 || writeSize != 200 {
		t.Fatalf("write stats broken, count=%d size=%d", writeCount, writeSize)
	}

	ts.Reset()
	readCount, writeCount, readSize, writeSize = ts.Get()
	if readCount != 0 || writeCount != 0 || readSize != 0 || writeSize != 0 {
		t.Fatal("reset broken")
	}
}
