package models

import "time"

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Data        any    `json:"data,omitempty"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

const ResponseVersion = 1

// ResponseCurrentTime is the envelope timestamp in Unix milliseconds.
func ResponseCurrentTime() int64 {
	return time.Now().UnixMilli()
}

func NewOKResponse(data any) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     ResponseVersion,
	}
}

func NewErrorResponse(code int, text string) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Text:        text,
		Version:     ResponseVersion,
	}
}

// EntryData wraps a single object.
type EntryData struct {
	Entry any `json:"entry"`
}

// ListData wraps a collection. List is never null on the wire.
type ListData[T any] struct {
	List []T `json:"list"`
}

func NewEntryResponse(entry any) ResponseModel {
	return NewOKResponse(EntryData{Entry: entry})
}

func NewListResponse[T any](list []T) ResponseModel {
	if list == nil {
		list = []T{}
	}
	return NewOKResponse(ListData[T]{List: list})
}
