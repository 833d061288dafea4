// Package checkpoint reads and writes trained parameter checkpoints in the
// SafeTensors format.
//
// File layout:
//
//	[8 bytes: header size, uint64 little-endian]
//	[header: JSON object, tensor name -> {dtype, shape, data_offsets}]
//	[tensor data: raw little-endian values]
//
// Only the dtypes the classifier toolchain needs are supported: F32 for
// trained float parameters, I8 and I32 for already quantized ones.
package checkpoint
