/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package logsink

/*****************************************************************************************************************/

import "testing"

/*****************************************************************************************************************/

type recordingSink struct {
	level    Level
	recordID string
	message  string
	calls    int
}

/*****************************************************************************************************************/

func (r *recordingSink) Log(level Level, recordID string, message string) {
	r.level = level
	r.recordID = recordID
	r.message = message
	r.calls++
}

/*****************************************************************************************************************/

func TestAdvisoryIsNoopForNilSink(t *testing.T) {
	Advisory(nil, "should not panic")
}

/*****************************************************************************************************************/

func TestAdvisoryLogsAtWarn(t *testing.T) {
	sink := &recordingSink{}
	Advisory(sink, "FK4 epoch_obs assumed equal to equinox")

	if sink.calls != 1 {
		t.Fatalf("calls = %d; want 1", sink.calls)
	}
	if sink.level != LevelWarn {
		t.Errorf("level = %v; want LevelWarn", sink.level)
	}
	if sink.message != "FK4 epoch_obs assumed equal to equinox" {
		t.Errorf("message = %q", sink.message)
	}
}

/*****************************************************************************************************************/

func TestNoopSinkDiscardsMessages(t *testing.T) {
	var sink LogSink = NoopSink{}
	sink.Log(LevelError, "id", "discarded")
}

/*****************************************************************************************************************/

func TestStdSinkGeneratesRecordIDWhenEmpty(t *testing.T) {
	sink := NewStdSink()
	sink.Log(LevelInfo, "", "message with generated id")
}

/*****************************************************************************************************************/
