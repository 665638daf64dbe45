package contact

// Attachment is one uploaded file from the contact form, fully buffered in
// memory for the lifetime of the request.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

func (a Attachment) Size() int64 {
	return int64(len(a.Content))
}

// TotalAttachmentSize sums the buffered sizes of all attachments.
func TotalAttachmentSize(attachments []Attachment) int64 {
	var total int64
	for _, a := range attachments {
		total += a.Size()
	}
	return total
}
