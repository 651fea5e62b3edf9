package kveventspb

import (
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"

	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type WriteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value         string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WriteRequest) Reset() {
	*x = WriteRequest{}
	mi := &file_kv_events_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WriteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WriteRequest) ProtoMessage() {}

func (x *WriteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kv_events_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WriteRequest.ProtoReflect.Descriptor instead.
func (*WriteRequest) Descriptor() ([]byte, []int) {
	return file_kv_events_proto_rawDescGZIP(), []int{0}
}

func (x *WriteRequest) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *WriteRequest) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type WriteResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Key                string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value              string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	Quorum             uint32                 `protobuf:"varint,3,opt,name=quorum,proto3" json:"quorum,omitempty"`
	AsyncConfirmations uint32                 `protobuf:"varint,4,opt,name=async_confirmations,json=asyncConfirmations,proto3" json:"async_confirmations,omitempty"`
	FailedSyncPeers    []string               `protobuf:"bytes,5,rep,name=failed_sync_peers,json=failedSyncPeers,proto3" json:"failed_sync_peers,omitempty"`
	Warning            string                 `protobuf:"bytes,6,opt,name=warning,proto3" json:"warning,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *WriteResponse) Reset() {
	*x = WriteResponse{}
	mi := &file_kv_events_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WriteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WriteResponse) ProtoMessage() {}

func (x *WriteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kv_events_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WriteResponse.ProtoReflect.Descriptor instead.
func (*WriteResponse) Descriptor() ([]byte, []int) {
	return file_kv_events_proto_rawDescGZIP(), []int{1}
}

func (x *WriteResponse) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *WriteResponse) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *WriteResponse) GetQuorum() uint32 {
	if x != nil {
		return x.Quorum
	}
	return 0
}

func (x *WriteResponse) GetAsyncConfirmations() uint32 {
	if x != nil {
		return x.AsyncConfirmations
	}
	return 0
}

func (x *WriteResponse) GetFailedSyncPeers() []string {
	if x != nil {
		return x.FailedSyncPeers
	}
	return nil
}

func (x *WriteResponse) GetWarning() string {
	if x != nil {
		return x.Warning
	}
	return ""
}

type ReadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReadRequest) Reset() {
	*x = ReadRequest{}
	mi := &file_kv_events_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReadRequest) ProtoMessage() {}

func (x *ReadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kv_events_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReadRequest.ProtoReflect.Descriptor instead.
func (*ReadRequest) Descriptor() ([]byte, []int) {
	return file_kv_events_proto_rawDescGZIP(), []int{2}
}

func (x *ReadRequest) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

type ReadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value         string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReadResponse) Reset() {
	*x = ReadResponse{}
	mi := &file_kv_events_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReadResponse) ProtoMessage() {}

func (x *ReadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kv_events_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReadResponse.ProtoReflect.Descriptor instead.
func (*ReadResponse) Descriptor() ([]byte, []int) {
	return file_kv_events_proto_rawDescGZIP(), []int{3}
}

func (x *ReadResponse) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *ReadResponse) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type ReplicateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value         string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReplicateRequest) Reset() {
	*x = ReplicateRequest{}
	mi := &file_kv_events_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReplicateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReplicateRequest) ProtoMessage() {}

func (x *ReplicateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kv_events_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReplicateRequest.ProtoReflect.Descriptor instead.
func (*ReplicateRequest) Descriptor() ([]byte, []int) {
	return file_kv_events_proto_rawDescGZIP(), []int{4}
}

func (x *ReplicateRequest) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *ReplicateRequest) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type ReplicateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReplicateResponse) Reset() {
	*x = ReplicateResponse{}
	mi := &file_kv_events_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReplicateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReplicateResponse) ProtoMessage() {}

func (x *ReplicateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kv_events_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReplicateResponse.ProtoReflect.Descriptor instead.
func (*ReplicateResponse) Descriptor() ([]byte, []int) {
	return file_kv_events_proto_rawDescGZIP(), []int{5}
}

func (x *ReplicateResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

type DumpRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DumpRequest) Reset() {
	*x = DumpRequest{}
	mi := &file_kv_events_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DumpRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DumpRequest) ProtoMessage() {}

func (x *DumpRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kv_events_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DumpRequest.ProtoReflect.Descriptor instead.
func (*DumpRequest) Descriptor() ([]byte, []int) {
	return file_kv_events_proto_rawDescGZIP(), []int{6}
}

type DumpEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value         string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DumpEntry) Reset() {
	*x = DumpEntry{}
	mi := &file_kv_events_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DumpEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DumpEntry) ProtoMessage() {}

func (x *DumpEntry) ProtoReflect() protoreflect.Message {
	mi := &file_kv_events_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DumpEntry.ProtoReflect.Descriptor instead.
func (*DumpEntry) Descriptor() ([]byte, []int) {
	return file_kv_events_proto_rawDescGZIP(), []int{7}
}

func (x *DumpEntry) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *DumpEntry) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type DumpResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*DumpEntry           `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DumpResponse) Reset() {
	*x = DumpResponse{}
	mi := &file_kv_events_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DumpResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DumpResponse) ProtoMessage() {}

func (x *DumpResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kv_events_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DumpResponse.ProtoReflect.Descriptor instead.
func (*DumpResponse) Descriptor() ([]byte, []int) {
	return file_kv_events_proto_rawDescGZIP(), []int{8}
}

func (x *DumpResponse) GetEntries() []*DumpEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type HealthRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthRequest) Reset() {
	*x = HealthRequest{}
	mi := &file_kv_events_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthRequest) ProtoMessage() {}

func (x *HealthRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kv_events_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthRequest.ProtoReflect.Descriptor instead.
func (*HealthRequest) Descriptor() ([]byte, []int) {
	return file_kv_events_proto_rawDescGZIP(), []int{9}
}

type HealthResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Leader        bool                   `protobuf:"varint,2,opt,name=leader,proto3" json:"leader,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthResponse) Reset() {
	*x = HealthResponse{}
	mi := &file_kv_events_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthResponse) ProtoMessage() {}

func (x *HealthResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kv_events_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthResponse.ProtoReflect.Descriptor instead.
func (*HealthResponse) Descriptor() ([]byte, []int) {
	return file_kv_events_proto_rawDescGZIP(), []int{10}
}

func (x *HealthResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *HealthResponse) GetLeader() bool {
	if x != nil {
		return x.Leader
	}
	return false
}

var File_kv_events_proto protoreflect.FileDescriptor

const file_kv_events_proto_rawDesc = "" +
	"\n" +
	"\x0fkv_events.proto\x12\bkvevents\"6\n" +
	"\fWriteRequest\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\"\xc6\x01\n" +
	"\rWriteResponse\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\x12\x16\n" +
	"\x06quorum\x18\x03 \x01(\rR\x06quorum\x12/\n" +
	"\x13async_confirmations\x18\x04 \x01(\rR\x12asyncConfirmations\x12*\n" +
	"\x11failed_sync_peers\x18\x05 \x03(\tR\x0ffailedSyncPeers\x12\x18\n" +
	"\awarning\x18\x06 \x01(\tR\awarning\"\x1f\n" +
	"\vReadRequest\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\"6\n" +
	"\fReadResponse\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\":\n" +
	"\x10ReplicateRequest\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\"#\n" +
	"\x11ReplicateResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\"\r\n" +
	"\vDumpRequest\"3\n" +
	"\tDumpEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\"=\n" +
	"\fDumpResponse\x12-\n" +
	"\aentries\x18\x01 \x03(\v2\x13.kvevents.DumpEntryR\aentries\"\x0f\n" +
	"\rHealthRequest\"@\n" +
	"\x0eHealthResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x16\n" +
	"\x06leader\x18\x02 \x01(\bR\x06leader2\xb6\x02\n" +
	"\tKVService\x128\n" +
	"\x05Write\x12\x16.kvevents.WriteRequest\x1a\x17.kvevents.WriteResponse\x125\n" +
	"\x04Read\x12\x15.kvevents.ReadRequest\x1a\x16.kvevents.ReadResponse\x12D\n" +
	"\tReplicate\x12\x1a.kvevents.ReplicateRequest\x1a\x1b.kvevents.ReplicateResponse\x125\n" +
	"\x04Dump\x12\x15.kvevents.DumpRequest\x1a\x16.kvevents.DumpResponse\x12;\n" +
	"\x06Health\x12\x17.kvevents.HealthRequest\x1a\x18.kvevents.HealthResponseB5Z3quorumdb/internal/transport/gen/kvevents;kveventspbb\x06proto3"

var (
	file_kv_events_proto_rawDescOnce sync.Once
	file_kv_events_proto_rawDescData []byte
)

func file_kv_events_proto_rawDescGZIP() []byte {
	file_kv_events_proto_rawDescOnce.Do(func() {
		file_kv_events_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_kv_events_proto_rawDesc), len(file_kv_events_proto_rawDesc)))
	})
	return file_kv_events_proto_rawDescData
}

var file_kv_events_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_kv_events_proto_goTypes = []any{
	(*WriteRequest)(nil),      // 0: kvevents.WriteRequest
	(*WriteResponse)(nil),     // 1: kvevents.WriteResponse
	(*ReadRequest)(nil),       // 2: kvevents.ReadRequest
	(*ReadResponse)(nil),      // 3: kvevents.ReadResponse
	(*ReplicateRequest)(nil),  // 4: kvevents.ReplicateRequest
	(*ReplicateResponse)(nil), // 5: kvevents.ReplicateResponse
	(*DumpRequest)(nil),       // 6: kvevents.DumpRequest
	(*DumpEntry)(nil),         // 7: kvevents.DumpEntry
	(*DumpResponse)(nil),      // 8: kvevents.DumpResponse
	(*HealthRequest)(nil),     // 9: kvevents.HealthRequest
	(*HealthResponse)(nil),    // 10: kvevents.HealthResponse
}
var file_kv_events_proto_depIdxs = []int32{
	7,  // 0: kvevents.DumpResponse.entries:type_name -> kvevents.DumpEntry
	0,  // 1: kvevents.KVService.Write:input_type -> kvevents.WriteRequest
	2,  // 2: kvevents.KVService.Read:input_type -> kvevents.ReadRequest
	4,  // 3: kvevents.KVService.Replicate:input_type -> kvevents.ReplicateRequest
	6,  // 4: kvevents.KVService.Dump:input_type -> kvevents.DumpRequest
	9,  // 5: kvevents.KVService.Health:input_type -> kvevents.HealthRequest
	1,  // 6: kvevents.KVService.Write:output_type -> kvevents.WriteResponse
	3,  // 7: kvevents.KVService.Read:output_type -> kvevents.ReadResponse
	5,  // 8: kvevents.KVService.Replicate:output_type -> kvevents.ReplicateResponse
	8,  // 9: kvevents.KVService.Dump:output_type -> kvevents.DumpResponse
	10, // 10: kvevents.KVService.Health:output_type -> kvevents.HealthResponse
	6,  // [6:11] is the sub-list for method output_type
	1,  // [1:6] is the sub-list for method input_type
	1,  // [1:1] is the sub-list for extension type_name
	1,  // [1:1] is the sub-list for extension extendee
	0,  // [0:1] is the sub-list for field type_name
}

func init() { file_kv_events_proto_init() }
func file_kv_events_proto_init() {
	if File_kv_events_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_kv_events_proto_rawDesc), len(file_kv_events_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_kv_events_proto_goTypes,
		DependencyIndexes: file_kv_events_proto_depIdxs,
		MessageInfos:      file_kv_events_proto_msgTypes,
	}.Build()
	File_kv_events_proto = out.File
	file_kv_events_proto_goTypes = nil
	file_kv_events_proto_depIdxs = nil
}
