package badger

import (
	"encoding/binary"
)

// Key prefixes for the document types.
const (
	userPrefix        = "user"
	userEmailPrefix   = "useremail"
	searchPrefix      = "search"
	topicPrefix       = "topic"
	spacePrefix       = "space"
	convPrefix        = "conv"
	messagePrefix     = "msg"
	messageSeqKey     = "msgseq"
	keySeparator      = ":"
)

func makeUserKey(id string) []byte {
	return []byte(userPrefix + keySeparator + id)
}

func makeUserEmailKey(email string) []byte {
	return []byte(userEmailPrefix + keySeparator + email)
}

func makeSearchKey(id string) []byte {
	return []byte(searchPrefix + keySeparator + id)
}

func makeTopicKey(id string) []byte {
	return []byte(topicPrefix + keySeparator + id)
}

func makeSpaceKey(id string) []byte {
	return []byte(spacePrefix + keySeparator + id)
}

func makeConversationKey(id string) []byte {
	return []byte(convPrefix + keySeparator + id)
}

// makeMessageKey composes prefix:conversationID:seq with the sequence in
// big-endian so lexicographic iteration yields insertion order.
func makeMessageKey(conversationID string, seq uint64) []byte {
	prefix := makeMessagePrefix(conversationID)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}

// makeMessagePrefix is the iteration prefix for one conversation's messages.
func makeMessagePrefix(conversationID string) []byte {
	return []byte(messagePrefix + keySeparator + conversationID + keySeparator)
}
