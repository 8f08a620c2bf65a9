package encode_utils

import (
	"errors"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

const (
	EncodingUTF8     = "UTF-8"
	EncodingUTF8BOM  = "UTF-8-BOM"
	EncodingGBK      = "GBK"
	EncodingGB18030  = "GB18030"
	EncodingHZGB2312 = "HZ-GB2312"
)

var (
	ErrUnrecognizedEncoding = errors.New("unrecognized encoding string")
)

// NewEncoder 创建编码器
func NewEncoder(encodingStr string) *encoding.Encoder {
	switch strings.ToUpper(encodingStr) {
	case EncodingUTF8:
		return unicode.UTF8.NewEncoder()
	case EncodingUTF8BOM:
		return unicode.UTF8BOM.NewEncoder()
	case EncodingGBK:
		return simplifiedchinese.GBK.NewEncoder()
	case EncodingGB18030:
		return simplifiedchinese.GB18030.NewEncoder()
	case EncodingHZGB2312:
		return simplifiedchinese.HZGB2312.NewEncoder()
	default:
		return nil
	}
}

// NewDecoder 创建解码器
func NewDecoder(encodingStr string) *encoding.Decoder {
	switch strings.ToUpper(encodingStr) {
	case EncodingUTF8:
		return unicode.UTF8.NewDecoder()
	case EncodingUTF8BOM:
		return unicode.UTF8BOM.NewDecoder()
	case EncodingGBK:
		return simplifiedchinese.GBK.NewDecoder()
	case EncodingGB18030:
		return simplifiedchinese.GB18030.NewDecoder()
	case EncodingHZGB2312:
		return simplifiedchinese.HZGB2312.NewDecoder()
	default:
		return nil
	}
}

// EncodeString 把 UTF-8 字符串编码为目标编码
// 目标编码为空或 UTF-8 时原样返回
func EncodeString(encodingStr string, text string) (string, error) {
	if encodingStr == "" || strings.ToUpper(encodingStr) == EncodingUTF8 {
		return text, nil
	}
	encoder := NewEncoder(encodingStr)
	if encoder == nil {
		return "", ErrUnrecognizedEncoding
	}
	return encoder.String(text)
}

// DecodeString 把目标编码字符串解码为 UTF-8
func DecodeString(encodingStr string, text string) (string, error) {
	if encodingStr == "" || strings.ToUpper(encodingStr) == EncodingUTF8 {
		return text, nil
	}
	decoder := NewDecoder(encodingStr)
	if decoder == nil {
		return "", ErrUnrecognizedEncoding
	}
	return decoder.String(text)
}
