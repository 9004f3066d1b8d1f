// Package codec 负责消息的编解码：外层为 protobuf 线格式的信封 {1: type, 2: payload}，payload 为 JSON
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/palemoky/four-landlord/internal/apperrors"
	"github.com/palemoky/four-landlord/internal/protocol"
)

const (
	fieldType    protowire.Number = 1
	fieldPayload protowire.Number = 2
)

// ErrMissingType 信封中没有消息类型
var ErrMissingType = errors.New("消息缺少类型")

// NewMessage 创建一个新消息
// 注意: 使用完毕后应调用 PutMessage 归还对象到池
func NewMessage(msgType protocol.MessageType, payload any) (*protocol.Message, error) {
	msg := GetMessage()
	msg.Type = msgType

	if payload != nil {
		buf := GetBuffer()
		defer PutBuffer(buf)
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			PutMessage(msg)
			return nil, err
		}
		// Encoder 会追加换行
		msg.Payload = append([]byte(nil), bytes.TrimSuffix(buf.Bytes(), []byte("\n"))...)
	}
	return msg, nil
}

// MustNewMessage 创建消息，失败时 panic
func MustNewMessage(msgType protocol.MessageType, payload any) *protocol.Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// Encode 将消息编码为二进制信封
func Encode(m *protocol.Message) ([]byte, error) {
	if m.Type == "" {
		return nil, ErrMissingType
	}
	size := protowire.SizeTag(fieldType) + protowire.SizeBytes(len(m.Type))
	if len(m.Payload) > 0 {
		size += protowire.SizeTag(fieldPayload) + protowire.SizeBytes(len(m.Payload))
	}

	b := make([]byte, 0, size)
	b = protowire.AppendTag(b, fieldType, protowire.BytesType)
	b = protowire.AppendString(b, string(m.Type))
	if len(m.Payload) > 0 {
		b = protowire.AppendTag(b, fieldPayload, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Payload)
	}
	return b, nil
}

// Decode 从二进制信封解码消息，未知字段会被跳过
// 注意: 使用完毕后应调用 PutMessage 归还对象到池
func Decode(data []byte) (*protocol.Message, error) {
	msg := GetMessage()
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			PutMessage(msg)
			return nil, fmt.Errorf("解析字段标签失败: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == fieldType && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(data)
			if m < 0 {
				PutMessage(msg)
				return nil, fmt.Errorf("解析消息类型失败: %w", protowire.ParseError(m))
			}
			msg.Type = protocol.MessageType(v)
			n = m
		case num == fieldPayload && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(data)
			if m < 0 {
				PutMessage(msg)
				return nil, fmt.Errorf("解析消息内容失败: %w", protowire.ParseError(m))
			}
			msg.Payload = append([]byte(nil), v...) // 复制 payload 避免引用
			n = m
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				PutMessage(msg)
				return nil, fmt.Errorf("跳过未知字段失败: %w", protowire.ParseError(n))
			}
		}
		data = data[n:]
	}

	if msg.Type == "" {
		PutMessage(msg)
		return nil, ErrMissingType
	}
	return msg, nil
}

// ParsePayload 解析消息的 Payload 到指定类型，空 Payload 返回零值
func ParsePayload[T any](msg *protocol.Message) (*T, error) {
	var payload T
	if len(msg.Payload) == 0 {
		return &payload, nil
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// NewErrorMessage 创建错误消息
func NewErrorMessage(code int) *protocol.Message {
	msg, _ := NewMessage(protocol.MsgError, protocol.ErrorPayload{
		Code:    code,
		Message: protocol.ErrorMessages[code],
	})
	return msg
}

// NewErrorMessageWithText 创建带自定义文本的错误消息
func NewErrorMessageWithText(code int, text string) *protocol.Message {
	msg, _ := NewMessage(protocol.MsgError, protocol.ErrorPayload{
		Code:    code,
		Message: text,
	})
	return msg
}

// NewErrorMessageFrom 将游戏错误转换为错误消息，其他错误按未知错误处理
func NewErrorMessageFrom(err error) *protocol.Message {
	if ge, ok := apperrors.AsGameError(err); ok {
		return NewErrorMessageWithText(ge.Code, ge.Message)
	}
	return NewErrorMessage(protocol.ErrCodeUnknown)
}
